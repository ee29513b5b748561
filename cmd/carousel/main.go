package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/carousel/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override carousel config path (optional)")
	pollSeconds := flag.Int("poll", 0, "reload interval in seconds (optional, defaults to [slides] refresh_seconds)")
	slideSource := flag.String("slides", "", "slide file or feed URL (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, SlidesSource: *slideSource}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "carousel: %v\n", err)
		return 1
	}
	return 0
}
