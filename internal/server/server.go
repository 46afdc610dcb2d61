// Package server exposes the classification engine over HTTP.
package server

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/spendsense/spendsense/internal/engine"
	"github.com/spendsense/spendsense/internal/feature"
	"github.com/spendsense/spendsense/internal/forest"
	"github.com/spendsense/spendsense/internal/storage"
)

// Config holds HTTP server settings.
type Config struct {
	CORSOrigins string
	Port        int
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Port:        5000,
		CORSOrigins: "*",
	}
}

// Deps are the collaborators the transport serves. Model and History may be
// nil: a nil model turns /api/predict into a model-unavailable responder,
// a nil history disables the history endpoint.
type Deps struct {
	Engine     *engine.Engine
	Model      *forest.Forest
	Schema     *feature.Schema
	Indicators *feature.Indicators
	History    *storage.SQLiteStorage
}

// Server is the HTTP transport around the classification engine.
type Server struct {
	app  *fiber.App
	deps Deps
	cfg  Config
}

// New creates the server and registers its routes.
func New(cfg Config, deps Deps) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "spendsense",
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET, POST, OPTIONS",
		AllowHeaders: "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization",
	}))

	s := &Server{
		app:  app,
		deps: deps,
		cfg:  cfg,
	}

	app.Get("/", s.handleHome)

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Post("/predict", s.handlePredict)
	api.Get("/sample", s.handleSample)
	if deps.History != nil {
		api.Get("/history", s.handleHistory)
	}

	return s
}

// App returns the underlying fiber application, used by tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves HTTP until Shutdown is called.
func (s *Server) Listen() error {
	return s.app.Listen(fmt.Sprintf(":%d", s.cfg.Port))
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
