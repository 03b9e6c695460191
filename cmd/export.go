package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/brettarda/brett-dev/internal/config"
	"github.com/brettarda/brett-dev/internal/export"
)

func newExportCmd() *cobra.Command {
	var (
		out         string
		contentFile string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the portfolio as a static site",
		Long: `Export renders the page once with the default theme and writes
index.html, the static assets and the résumé into the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("content") {
				cfg.ContentFile = contentFile
			}
			site, err := loadSite(cfg.ContentFile)
			if err != nil {
				return err
			}

			if err := export.Write(export.Options{
				OutDir:     out,
				Site:       site,
				Theme:      cfg.DefaultTheme(),
				ThemeKey:   cfg.ThemeStorageKey,
				Year:       time.Now().Year(),
				ResumePath: cfg.ResumePath,
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported site to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "public", "output directory")
	cmd.Flags().StringVar(&contentFile, "content", "", "YAML content file (overrides CONTENT_FILE)")
	return cmd
}
