package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/brettarda/brett-dev/internal/analytics"
	"github.com/brettarda/brett-dev/internal/config"
	"github.com/brettarda/brett-dev/internal/content"
	"github.com/brettarda/brett-dev/internal/logging"
	"github.com/brettarda/brett-dev/internal/server"
)

type serveFlags struct {
	port    string
	content string
	watch   bool
}

func (f *serveFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.port, "port", "p", "", "listen port (overrides PORT)")
	cmd.Flags().StringVar(&f.content, "content", "", "YAML content file (overrides CONTENT_FILE)")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "reload the content file when it changes (overrides CONTENT_WATCH)")
}

// apply lets explicitly set flags win over the environment.
func (f *serveFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("port") {
		cfg.Port = f.port
	}
	if cmd.Flags().Changed("content") {
		cfg.ContentFile = f.content
	}
	if cmd.Flags().Changed("watch") {
		cfg.ContentWatch = f.watch
	}
}

func newServeCmd() *cobra.Command {
	flags := &serveFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
	flags.bind(cmd)
	return cmd
}

func runServe(cmd *cobra.Command, flags *serveFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	log, err := logging.New(logging.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	site, err := loadSite(cfg.ContentFile)
	if err != nil {
		return err
	}
	src := content.NewSource(site)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.ContentWatch && cfg.ContentFile != "" {
		if err := content.Watch(ctx, cfg.ContentFile, src, log); err != nil {
			return err
		}
		log.Info().Str("file", cfg.ContentFile).Msg("watching content file")
	}

	var store *analytics.Store
	if cfg.AnalyticsEnabled {
		store, err = openAnalytics(cfg, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Warn().Err(err).Msg("close analytics")
			}
		}()
	}

	srv, err := server.New(server.Options{
		Config:    cfg,
		Logger:    log,
		Content:   src,
		Analytics: store,
	})
	if err != nil {
		return err
	}
	if cfg.AdminEnabled() {
		log.Info().Msg("admin access available at /admin/login")
	}
	return srv.Run(ctx, ":"+cfg.Port)
}

// loadSite returns the content file's Site, or the compiled-in content when
// no file is configured.
func loadSite(path string) (*content.Site, error) {
	if path == "" {
		return content.Default(), nil
	}
	site, err := content.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return site, nil
}

func openAnalytics(cfg *config.Config, log zerolog.Logger) (*analytics.Store, error) {
	store, err := analytics.Open(analytics.Options{
		Path:   cfg.DatabasePath,
		Salt:   cfg.AnalyticsSalt,
		Logger: log,
	})
	if err != nil {
		return nil, fmt.Errorf("open analytics: %w", err)
	}
	log.Info().Str("db", cfg.DatabasePath).Msg("visitor tracking enabled with hashed IP addresses")

	retention := cfg.AnalyticsRetention
	store.Go("cleanup", func(ctx context.Context) error {
		_, err := store.Cleanup(ctx, retention)
		return err
	})
	return store, nil
}
