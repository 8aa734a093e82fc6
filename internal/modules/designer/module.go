// Package designer is the business card designer feature: the editor page,
// its htmx actions, print and contact exports.
package designer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/cardforge/internal/editor"
	"github.com/nfrund/cardforge/internal/middleware"
	"github.com/nfrund/cardforge/internal/module"
	"github.com/nfrund/cardforge/internal/modules/designer/view"
	"github.com/nfrund/cardforge/internal/pubsub"
	"github.com/nfrund/cardforge/internal/registry"
	"github.com/nfrund/cardforge/internal/render"
	"github.com/nfrund/cardforge/internal/rendering"
)

// Dependencies are the shared services the designer needs.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
}

// Module wires the designer into the server.
type Module struct {
	module.BaseModule
	deps    Dependencies
	handler *Handler
	cancel  context.CancelFunc
}

// New creates the designer module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string {
	return "designer"
}

// Register builds the editor store from configuration and the registered
// tagline suggester.
func (m *Module) Register(reg *registry.Registry) error {
	suggester, ok := registry.Get(reg, registry.TaglineSuggesterKey)
	if !ok {
		return fmt.Errorf("tagline suggester not found in registry")
	}
	cfg := reg.Config()

	store := editor.NewStore(editor.Options{
		Suggester:    suggester,
		Publisher:    m.deps.Publisher,
		Theme:        render.ThemeID(cfg.GetCardTheme()),
		LogoMaxBytes: cfg.GetLogoMaxBytes(),
	}, cfg.GetEditorIdleTTL())
	registry.Set(reg, registry.EditorStoreKey, store)
	return nil
}

// Boot mounts the routes and starts the card event audit log.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	store := registry.MustGet(reg, registry.EditorStoreKey)
	m.handler = NewHandler(store, m.deps.Renderer)

	g.GET("/", m.handler.Page)
	g.GET(view.PrintPath, m.handler.Print)
	g.GET(view.VCardPath, m.handler.VCard)
	g.GET(view.QRPath, m.handler.QRCode)

	g.POST(view.FieldsPath, m.handler.UpdateField)
	g.POST(view.LogoPath, m.handler.UploadLogo)
	g.POST(view.LogoRemovePath, m.handler.RemoveLogo)
	g.POST(view.TaglinePath, m.handler.GenerateTagline, middleware.TaglineRateLimiter())
	g.POST(view.TaglineStopPath, m.handler.CancelTagline)
	g.POST(view.SidePath, m.handler.SetSide)
	g.POST(view.ThemePath, m.handler.SetTheme)

	if m.deps.Subscriber != nil {
		auditCtx, cancel := context.WithCancel(ctx)
		m.cancel = cancel
		if err := editor.SubscribeAudit(auditCtx, m.deps.Subscriber, slog.Default().With("module", m.Name())); err != nil {
			cancel()
			return fmt.Errorf("failed to subscribe card audit log: %w", err)
		}
	}
	return nil
}

// Shutdown stops the audit subscriber.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}
