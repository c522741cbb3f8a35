package repository

import (
	"context"
	"fmt"
	"os"

	"catalog/internal/domain"
	apperrors "catalog/internal/errors"

	"go.yaml.in/yaml/v3"
)

// FileRepository serves the catalog from a local YAML or JSON document with
// the same record shape as the remote API. It exists for offline use.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewFetchError("", err)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, apperrors.NewFetchError("", fmt.Errorf("reading product file: %w", err))
	}

	var products []domain.Product
	if err := yaml.Unmarshal(data, &products); err != nil {
		return nil, apperrors.NewFetchError("", fmt.Errorf("parsing product file: %w", err))
	}

	return products, nil
}
