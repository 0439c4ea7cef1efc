package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "portfolio-site/internal/adapter/http"
	repo "portfolio-site/internal/adapter/repository"
	"portfolio-site/internal/config"
	"portfolio-site/internal/logging"
	"portfolio-site/internal/metrics"
	"portfolio-site/internal/render"
	"portfolio-site/internal/usecase"
	infra "portfolio-site/pkg/infrastructure"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	port    string
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Serve the portfolio site",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		return serve(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on")
}

func serve(ctx context.Context, cfg config.Config) error {
	log, err := logging.New(cfg.Production())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	tpls, err := render.NewTemplates()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	content := repo.NewContentRepo(cfg.ReadDelay)
	contacts := repo.NewContactsRepo()
	site := usecase.NewSite(content)
	actions := usecase.NewActions(contacts, content, log, usecase.ActionsOptions{
		ActionDelay: cfg.ActionDelay,
		UploadDelay: cfg.UploadDelay,
	})
	exporter := usecase.NewExporter(site, tpls, infra.NewChromedpRenderer(cfg.ChromePath))

	boards := metrics.NewBoards(time.Now().UnixNano())
	boards.Start(ctx)
	defer boards.Stop()

	app := httpadapter.NewApp(httpadapter.NewHandler(httpadapter.Deps{
		SiteTitle: cfg.SiteTitle,
		Site:      site,
		Actions:   actions,
		Exporter:  exporter,
		Admin:     content,
		Boards:    boards,
		Templates: tpls,
		Log:       log,
	}))

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		errc <- app.Listen(":" + cfg.Port)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errc:
		return fmt.Errorf("server failed: %w", err)
	case s := <-sig:
		log.Info("shutting down", zap.String("signal", s.String()))
	}

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Error("shutdown", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
