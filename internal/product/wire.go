package product

import (
	"context"
	"fmt"

	"catalog/internal/config"
	"catalog/internal/infrastructure/mysql"
	"catalog/internal/product/controller"
	"catalog/internal/product/repository"
	"catalog/internal/product/store"
	"catalog/internal/product/usecase"

	"go.uber.org/zap"
)

// Module is the composed catalog feature. Store is owned here and shared by
// every surface; the fetch completion is its only writer.
type Module struct {
	Store      *store.Store
	Repository Repository
	UseCase    *usecase.BrowseUseCase
	Controller *controller.CatalogController

	close func() error
}

// NewRepository builds the product source selected by cfg.Source.Kind.
func NewRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Source.Kind {
	case config.SourceHTTP:
		return repository.NewHTTPRepository(cfg.Source.HTTP.URL, cfg.Source.HTTP.Timeout, logger), noop, nil
	case config.SourceFile:
		return repository.NewFileRepository(cfg.Source.File.Path), noop, nil
	case config.SourceMySQL:
		db, err := mysql.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to product database: %w", err)
		}
		logger.Info("database connected", zap.String("host", cfg.Database.Host), zap.String("name", cfg.Database.Name))
		return repository.NewMySQLRepository(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}

func NewModule(repo Repository, cfg *config.Config, logger *zap.Logger) *Module {
	st := store.New(logger.Named("store"))
	uc := usecase.NewBrowseUseCase(st)
	ctrl := controller.NewCatalogController(uc, st, cfg.View.DarkMode, logger.Named("catalog"))

	return &Module{
		Store:      st,
		Repository: repo,
		UseCase:    uc,
		Controller: ctrl,
		close:      func() error { return nil },
	}
}

// Start launches the one product fetch.
func (m *Module) Start(ctx context.Context) <-chan struct{} {
	return m.Store.Launch(ctx, m.Repository)
}

// WithCloser attaches the source's release func, run by Close.
func (m *Module) WithCloser(fn func() error) *Module {
	if fn != nil {
		m.close = fn
	}
	return m
}

func (m *Module) Close() error {
	return m.close()
}
