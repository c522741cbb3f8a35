package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"catalog/internal/product"
	"catalog/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web catalog and JSON API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	zapLogger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := product.NewRepository(ctx, cfg, zapLogger)
	if err != nil {
		return err
	}
	m := product.NewModule(repo, cfg, zapLogger).WithCloser(closeRepo)
	defer m.Close()

	srv := server.New(cfg.Server, server.NewRouter(m.Controller, zapLogger), zapLogger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(srv.Start)

	g.Go(func() error {
		select {
		case <-m.Start(gctx):
		case <-gctx.Done():
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		zapLogger.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zapLogger.Error("server stopped with error", zap.Error(err))
		return err
	}

	zapLogger.Info("server stopped gracefully")
	return nil
}
