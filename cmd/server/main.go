package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/cardforge/internal/app"
	"github.com/nfrund/cardforge/internal/config"
	"github.com/nfrund/cardforge/internal/logging"
	"github.com/nfrund/cardforge/internal/pubsub"
	"github.com/nfrund/cardforge/internal/registry"
	"github.com/nfrund/cardforge/internal/rendering"
	"github.com/nfrund/cardforge/internal/server"
	"github.com/nfrund/cardforge/internal/tagline"
)

func main() {
	logging.New()
	cfg := config.New()

	reg := registry.New(cfg)
	registry.Set(reg, registry.TaglineSuggesterKey, tagline.NewSuggester(cfg))

	bus := pubsub.NewWatermillBridge()
	renderer := rendering.NewNodeRenderer()

	s, err := server.New(server.Dependencies{
		Config:    cfg,
		Renderer:  renderer,
		Publisher: bus,
	})
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	mods := app.NewModules(app.Dependencies{
		Publisher:  bus,
		Subscriber: bus,
		Renderer:   renderer,
	})
	if err := s.InitModules(context.Background(), mods, reg); err != nil {
		slog.Error("Failed to initialize modules", "error", err)
		os.Exit(1)
	}

	// Register the routes that belong to no module.
	s.RegisterRoutes()

	// Start the server.
	if err := s.Start(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
