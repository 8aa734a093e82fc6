package app

import (
	"github.com/nfrund/cardforge/internal/module"
	"github.com/nfrund/cardforge/internal/modules/designer"
	"github.com/nfrund/cardforge/internal/pubsub"
	"github.com/nfrund/cardforge/internal/rendering"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
}

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		designer.New(designerDeps(deps)),
	}
}

// designerDeps creates the dependency struct for the designer module.
func designerDeps(deps Dependencies) designer.Dependencies {
	return designer.Dependencies{
		Publisher:  deps.Publisher,
		Subscriber: deps.Subscriber,
		Renderer:   deps.Renderer,
	}
}
