package server

import (
	"net/http"

	"catalog/internal/server/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type CatalogController interface {
	HandleIndex(w http.ResponseWriter, r *http.Request)
	HandleListProducts(w http.ResponseWriter, r *http.Request)
	HandleToggleTheme(w http.ResponseWriter, r *http.Request)
	HandleHealth(w http.ResponseWriter, r *http.Request)
}

func NewRouter(catalogCtrl CatalogController, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(chimw.Recoverer)

	r.Get("/", catalogCtrl.HandleIndex)
	r.Post("/theme", catalogCtrl.HandleToggleTheme)
	r.Get("/health", catalogCtrl.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", catalogCtrl.HandleListProducts)
	})

	return r
}
