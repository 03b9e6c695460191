// Package server wires the portfolio page, theme and navigation endpoints,
// and the analytics admin area onto gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/brettarda/brett-dev/internal/analytics"
	"github.com/brettarda/brett-dev/internal/config"
	"github.com/brettarda/brett-dev/internal/content"
	"github.com/brettarda/brett-dev/internal/view"
)

type Options struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Content *content.Source
	// Analytics is optional. Without it nothing is recorded and the admin
	// area is not mounted.
	Analytics *analytics.Store
	// Now defaults to time.Now.
	Now func() time.Time
}

type Server struct {
	cfg       *config.Config
	log       zerolog.Logger
	content   *content.Source
	analytics *analytics.Store
	now       func() time.Time

	adminToken string
	engine     *gin.Engine
}

func New(opts Options) (*Server, error) {
	if opts.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if opts.Content == nil {
		return nil, errors.New("server: content source is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Server{
		cfg:       opts.Config,
		log:       opts.Logger,
		content:   opts.Content,
		analytics: opts.Analytics,
		now:       opts.Now,
	}

	if s.adminEnabled() {
		token, err := config.RandomToken()
		if err != nil {
			return nil, fmt.Errorf("admin token: %w", err)
		}
		s.adminToken = token
	}

	s.engine = s.routes()
	return s, nil
}

func (s *Server) adminEnabled() bool {
	return s.analytics != nil && s.cfg.AdminPassword != ""
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log), clientHints())
	if s.analytics != nil {
		r.Use(analytics.Middleware(s.analytics))
	}

	r.StaticFS("/static", http.FS(view.Assets()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", s.handlePage)
	r.GET("/home", s.handleHome)
	r.GET("/nav/:section", s.handleNav)
	r.POST("/theme", s.handleSetTheme)
	r.POST("/theme/toggle", s.handleToggleTheme)

	if s.adminEnabled() {
		s.setupAdminRoutes(r)
	}

	// The résumé path comes from content, which can be reloaded, so it is
	// matched here rather than registered once.
	r.NoRoute(s.handleNotFound)
	return r
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Warn().Err(err).Msg("graceful shutdown failed")
		}
	}()

	s.log.Info().Str("addr", addr).Bool("admin", s.adminEnabled()).Msg("portfolio listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
