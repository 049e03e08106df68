package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/config"
	"github.com/pageza/recipebox/backend/internal/api"
	"github.com/pageza/recipebox/backend/internal/middleware"
	"github.com/pageza/recipebox/backend/internal/service"
)

// Deps are the services the HTTP layer is built on
type Deps struct {
	Auth      service.IAuthService
	Workspace service.IWorkspace
	Limits    api.RateLimits
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New creates a new server instance with every route registered
func New(cfg *config.Config, deps Deps, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	api.RegisterRoutes(router, deps.Auth, deps.Workspace, deps.Limits, logger)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.http.Shutdown(ctx)
}
