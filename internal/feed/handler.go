package feed

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/five82/carousel/internal/carousel"
	"github.com/five82/carousel/internal/logger"
	"github.com/five82/carousel/internal/slides"
)

// SlideHandler serves the slide list from a Loader.
type SlideHandler struct {
	loader slides.Loader
}

// NewSlideHandler creates a new SlideHandler.
func NewSlideHandler(loader slides.Loader) *SlideHandler {
	return &SlideHandler{loader: loader}
}

// GetSlides handles GET /api/slides.
func (h *SlideHandler) GetSlides(c *fiber.Ctx) error {
	items, err := h.loader.Load(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to load slides", zap.Error(err))
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{
			"error": "Slide source unavailable",
		})
	}
	if items == nil {
		items = []carousel.SlideSource{}
	}
	return c.Status(http.StatusOK).JSON(slides.Document{Slides: items})
}

// Health handles GET /healthz.
func (h *SlideHandler) Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "ok"})
}
