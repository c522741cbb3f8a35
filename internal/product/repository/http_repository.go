package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"catalog/internal/domain"
	apperrors "catalog/internal/errors"

	"go.uber.org/zap"
)

// HTTPRepository reads the whole catalog from a product listing endpoint that
// answers a plain GET with a JSON array.
type HTTPRepository struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

func NewHTTPRepository(url string, timeout time.Duration, logger *zap.Logger) *HTTPRepository {
	return &HTTPRepository{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (r *HTTPRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, apperrors.NewFetchError("", fmt.Errorf("building request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	r.logger.Debug("requesting products", zap.String("url", r.url))

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("product request failed", zap.String("url", r.url), zap.Error(err))
		return nil, apperrors.NewFetchError("", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.logger.Warn("product request returned non-success status",
			zap.String("url", r.url),
			zap.Int("status", resp.StatusCode),
		)
		return nil, apperrors.NewFetchError(
			fmt.Sprintf("request failed with status code %d", resp.StatusCode), nil,
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.logger.Warn("reading product payload failed", zap.String("url", r.url), zap.Error(err))
		return nil, apperrors.NewFetchError("", fmt.Errorf("reading products: %w", err))
	}

	// Unmarshal rejects trailing data after the array.
	var products []domain.Product
	if err := json.Unmarshal(body, &products); err != nil {
		r.logger.Warn("decoding product payload failed", zap.String("url", r.url), zap.Error(err))
		return nil, apperrors.NewFetchError("", fmt.Errorf("decoding products: %w", err))
	}

	return products, nil
}
