package product

import (
	"context"

	"catalog/internal/domain"
)

// Repository is a read-only product source. Each implementation returns the
// full catalog in one call; filtering happens client-side.
type Repository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}
