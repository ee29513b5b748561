// Package feed serves slide records over HTTP for carousel viewers.
package feed

import (
	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/five82/carousel/internal/logger"
	"github.com/five82/carousel/internal/slides"
)

// SlidesPath is the route the slides.Client fetches.
const SlidesPath = "/api/slides"

// Server holds the Fiber application.
type Server struct {
	// App is the main Fiber application instance.
	App  *fiber.App
	addr string
}

// New creates a Server with request IDs, request logging and the slide routes.
func New(addr string, loader slides.Loader) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "slidefeed",
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	Register(app, NewSlideHandler(loader))

	return &Server{App: app, addr: addr}
}

// Register mounts the feed routes on app.
func Register(app *fiber.App, h *SlideHandler) {
	app.Get(SlidesPath, h.GetSlides)
	app.Get("/healthz", h.Health)
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	logger.Get().Info("Starting slide feed", zap.String("address", s.addr))
	return s.App.Listen(s.addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}
