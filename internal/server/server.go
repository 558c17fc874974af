package server

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"

	v1 "github.com/fazi9228/cs-data-processor/internal/api/v1"
	"github.com/fazi9228/cs-data-processor/internal/config"
	"github.com/fazi9228/cs-data-processor/internal/exporter"
	"github.com/fazi9228/cs-data-processor/internal/store"
)

// Server is the HTTP server.
type Server struct {
	router *gin.Engine
	store  *store.Store
	v1     *v1.Handler
}

// NewServer wires the store, exporter and API handler.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}

	sqliteStore, err := store.New(filepath.Join(dataDir, "processor.db"))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	exp := exporter.NewExporter(cfg.Export.DateFormat, cfg.Export.NumberFormat)
	handler := v1.NewHandler(sqliteStore, exp,
		filepath.Join(dataDir, "uploads"),
		filepath.Join(dataDir, "exports"))

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		v1:     handler,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the server's resources.
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore exposes the store for tests.
func (s *Server) GetStore() *store.Store {
	return s.store
}
