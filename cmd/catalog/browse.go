package main

import (
	"context"
	"fmt"

	"catalog/internal/product"
	"catalog/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logFile string
	dark    bool
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog in the terminal",
	Long: `Opens an interactive viewer.

Keys: / search, s sort, ←/→ or h/l page, t theme, q quit.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&logFile, "log-file", "catalog.log", "File to write logs to while the viewer owns the terminal")
	browseCmd.Flags().BoolVar(&dark, "dark", false, "Start in dark mode")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dark") {
		cfg.View.DarkMode = dark
	}

	zapLogger, err := newLogger(cfg, logFile)
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	repo, closeRepo, err := product.NewRepository(ctx, cfg, zapLogger)
	if err != nil {
		return err
	}
	m := product.NewModule(repo, cfg, zapLogger).WithCloser(closeRepo)
	defer m.Close()

	p := tea.NewProgram(tui.NewModel(m.UseCase, cfg.View.DarkMode), tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := tui.Subscribe(m.Store, p)
	defer unsubscribe()

	done := m.Start(ctx)

	if _, err := p.Run(); err != nil {
		zapLogger.Error("viewer failed", zap.Error(err))
		return fmt.Errorf("running viewer: %w", err)
	}

	cancel()
	<-done
	return nil
}
