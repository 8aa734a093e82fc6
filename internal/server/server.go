package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/cardforge/internal/config"
	"github.com/nfrund/cardforge/internal/handlers"
	appmiddleware "github.com/nfrund/cardforge/internal/middleware"
	"github.com/nfrund/cardforge/internal/module"
	"github.com/nfrund/cardforge/internal/pubsub"
	"github.com/nfrund/cardforge/internal/registry"
	"github.com/nfrund/cardforge/internal/rendering"
)

// Dependencies are the services the server is assembled from.
type Dependencies struct {
	Config    config.Provider
	Renderer  rendering.Renderer
	Publisher pubsub.Publisher
	// Echo is optional; a new instance is created when nil.
	Echo *echo.Echo
}

// Server holds the HTTP server and the modules mounted on it.
type Server struct {
	E         *echo.Echo
	Cfg       config.Provider
	Renderer  rendering.Renderer
	Publisher pubsub.Publisher

	modules []module.Module
	cancel  context.CancelFunc
}

// New creates a Server with middleware, sessions and error handling set up.
// Routes are added by InitModules and RegisterRoutes.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Renderer == nil {
		return nil, errors.New("server: renderer is required")
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	if r, ok := deps.Renderer.(echo.Renderer); ok {
		e.Renderer = r
	}

	setupMiddleware(e, deps.Config)
	setupErrorHandling(e)

	return &Server{
		E:         e,
		Cfg:       deps.Config,
		Renderer:  deps.Renderer,
		Publisher: deps.Publisher,
	}, nil
}

func setupMiddleware(e *echo.Echo, cfg config.Provider) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger := appmiddleware.FromContext(c.Request().Context())
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	// Logo uploads are the largest bodies; leave headroom for multipart framing.
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dK", cfg.GetLogoMaxBytes()/1024+512)))

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))
}

// setupErrorHandling logs unhandled errors with a stack trace before echo
// writes the response.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := appmiddleware.FromContext(c.Request().Context())
		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code >= http.StatusInternalServerError {
				logger.Error("Server error", "error", err, "internal", he.Internal)
			} else {
				logger.Debug("Request rejected", "code", he.Code, "error", err)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}

// InitModules registers and boots mods on the root route group. ctx bounds
// the lifetime of background work started by the modules.
func (s *Server) InitModules(ctx context.Context, mods []module.Module, reg *registry.Registry) error {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	if err := module.RegisterAll(reg, mods); err != nil {
		cancel()
		return err
	}
	if err := module.BootAll(ctx, s.E.Group(""), reg, mods); err != nil {
		cancel()
		return err
	}
	s.modules = mods
	return nil
}

// Shutdown stops the HTTP server, the modules and the event bus, in that order.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := module.ShutdownAll(ctx, s.modules); err != nil {
		errs = append(errs, err)
	}
	if s.cancel != nil {
		s.cancel()
	}
	if s.Publisher != nil {
		if err := s.Publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("event bus close: %w", err))
		}
	}
	return errors.Join(errs...)
}
