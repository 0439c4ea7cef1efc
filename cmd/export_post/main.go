package main

import (
	"context"
	"fmt"
	"os"
	"time"

	repo "portfolio-site/internal/adapter/repository"
	"portfolio-site/internal/config"
	"portfolio-site/internal/render"
	"portfolio-site/internal/usecase"
	infra "portfolio-site/pkg/infrastructure"

	"github.com/spf13/cobra"
)

// export_post renders one published post to a PDF file using the same
// print templates and headless Chrome renderer as /blog/:slug/pdf.

var (
	cfgFile string
	out     string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:          "export_post <slug>",
	Short:        "Render a published post to PDF",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		tpls, err := render.NewTemplates()
		if err != nil {
			return fmt.Errorf("load templates: %w", err)
		}

		site := usecase.NewSite(repo.NewContentRepo(0))
		exporter := usecase.NewExporter(site, tpls, infra.NewChromedpRenderer(cfg.ChromePath))

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		pdf, ok, err := exporter.PostPDF(ctx, cfg.SiteTitle, slug)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no published post with slug %q", slug)
		}

		path := out
		if path == "" {
			path = slug + ".pdf"
		}
		if err := os.WriteFile(path, pdf, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("wrote %s (%d bytes)\n", path, len(pdf))
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <slug>.pdf)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 90*time.Second, "render timeout")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
