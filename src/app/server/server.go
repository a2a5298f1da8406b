// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"pressroom/src/app/http/handler"
	"pressroom/src/app/http/response"
	"pressroom/src/app/middleware"
	"pressroom/src/core/ports"
	"pressroom/src/core/usecase"
	"pressroom/src/infra/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	healthHandler  *handler.HealthHandler
	articleHandler *handler.ArticleHandler
	userHandler    *handler.UserHandler
	commentHandler *handler.CommentHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, stores ports.Stores) *Server {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Services
	healthService := usecase.NewHealthService(stores.Health, log)
	articleService := usecase.NewArticleService(stores.Articles, log)
	userService := usecase.NewUserService(stores.Users, stores.Comments, log)
	commentService := usecase.NewCommentService(stores.Comments, stores.Articles, stores.Users, log)

	s := &Server{
		cfg:            cfg,
		log:            log,
		router:         router,
		healthHandler:  handler.NewHealthHandler(healthService, cfg.Server.Environment),
		articleHandler: handler.NewArticleHandler(articleService),
		userHandler:    handler.NewUserHandler(userService),
		commentHandler: handler.NewCommentHandler(commentService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery first to catch all panics, TraceID before
	// anything that correlates on it, ErrorBoundary innermost so it sees
	// handler errors before the outer middleware observe the response.
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.TraceID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
	s.router.Use(middleware.ErrorBoundary(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthHandler.Health)

		articles := api.Group("/articles")
		{
			articles.GET("", s.articleHandler.List)
			articles.GET("/:id", s.articleHandler.Get)
			articles.GET("/:id/details", s.articleHandler.Details)
			articles.POST("", s.articleHandler.Create)
			articles.PUT("/:id", s.articleHandler.Update)
			articles.DELETE("/:id", s.articleHandler.Delete)
		}

		users := api.Group("/users")
		{
			users.GET("", s.userHandler.List)
			users.GET("/:id", s.userHandler.Get)
			users.GET("/:id/profile", s.userHandler.Profile)
			users.GET("/email/:email", s.userHandler.GetByEmail)
			users.POST("", s.userHandler.Create)
			users.PUT("/:id", s.userHandler.Update)
		}

		comments := api.Group("/comments")
		{
			comments.GET("/article/:articleId", s.commentHandler.ByArticle)
			comments.GET("/user/:userId", s.commentHandler.ByUser)
			comments.GET("/:id", s.commentHandler.Get)
			comments.POST("", s.commentHandler.Create)
			comments.DELETE("/:id", s.commentHandler.Delete)
		}
	}

	// Unmatched routes still answer with a well-formed envelope.
	s.router.NoRoute(func(c *gin.Context) {
		response.RouteNotFound(c, c.Request.URL.Path)
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server", "addr", s.cfg.Server.Addr())
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady waits until the server is ready to accept connections.
// Useful for integration tests.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
