package server

import (
	"github.com/nfrund/cardforge/internal/handlers"
)

// RegisterRoutes sets up the routes that belong to no module.
func (s *Server) RegisterRoutes() {
	s.E.GET("/health", handlers.Health)
}
