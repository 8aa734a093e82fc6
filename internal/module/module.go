// Package module defines the lifecycle every feature of the server follows.
package module

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/cardforge/internal/registry"
)

// Module is a self-contained feature mounted on the server.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register puts the module's services in the registry. No routes yet.
	Register(reg *registry.Registry) error

	// Boot runs once every module is registered. Routes and background
	// subscribers are set up here; ctx lives as long as the server.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown releases whatever Boot started.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op lifecycle methods for embedding.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }

// RegisterAll registers mods in order and stops at the first failure.
func RegisterAll(reg *registry.Registry, mods []Module) error {
	for _, m := range mods {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
		slog.Debug("Module registered", "module", m.Name())
	}
	return nil
}

// BootAll boots mods in order on router and stops at the first failure.
func BootAll(ctx context.Context, router *echo.Group, reg *registry.Registry, mods []Module) error {
	for _, m := range mods {
		if err := m.Boot(ctx, router, reg); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Info("Module booted", "module", m.Name())
	}
	return nil
}

// ShutdownAll shuts mods down in reverse order and joins every error.
func ShutdownAll(ctx context.Context, mods []Module) error {
	var errs []error
	for i := len(mods) - 1; i >= 0; i-- {
		if err := mods[i].Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown module %s: %w", mods[i].Name(), err))
		}
	}
	return errors.Join(errs...)
}
