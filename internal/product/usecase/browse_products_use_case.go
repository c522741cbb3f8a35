package usecase

import (
	"context"

	"catalog/internal/domain"
	"catalog/internal/dto"
	apperrors "catalog/internal/errors"
	"catalog/internal/product/store"
	"catalog/internal/product/view"
)

type Store interface {
	Snapshot() store.Snapshot
}

// BrowseResult is everything a surface needs to draw one screen of the
// catalog. Page and Controls are zero unless Status is success.
type BrowseResult struct {
	Status   store.Status
	Error    string
	State    view.State
	Page     view.Page
	Controls view.Controls
}

func (r *BrowseResult) Ready() bool {
	return r.Status == store.StatusSuccess
}

// Err is nil for a ready result, a FetchError after a failed fetch and an
// UnavailableError while the fetch is outstanding.
func (r *BrowseResult) Err() error {
	switch r.Status {
	case store.StatusSuccess:
		return nil
	case store.StatusError:
		return apperrors.NewFetchError(r.Error, nil)
	default:
		return apperrors.NewUnavailableError("products are still loading")
	}
}

type BrowseUseCase struct {
	store Store
}

func NewBrowseUseCase(store Store) *BrowseUseCase {
	return &BrowseUseCase{store: store}
}

// Browse reads the current catalog snapshot and runs the view pipeline over
// it. It never writes to the store.
func (uc *BrowseUseCase) Browse(ctx context.Context, state view.State) *BrowseResult {
	snap := uc.store.Snapshot()

	result := &BrowseResult{
		Status: snap.Status,
		Error:  snap.Error,
		State:  state,
	}
	if snap.Status != store.StatusSuccess {
		return result
	}

	result.Page = view.Apply(snap.Products, state)
	result.Controls = view.NewControls(result.Page.CurrentPage, result.Page.TotalPages)
	return result
}

// ToResponse maps a ready result to its JSON shape.
func ToResponse(result *BrowseResult) *dto.BrowseResponse {
	products := make([]dto.ProductDTO, 0, len(result.Page.Products))
	for _, p := range result.Page.Products {
		products = append(products, ToProductDTO(p))
	}

	return &dto.BrowseResponse{
		Status:       string(result.Status),
		SearchTerm:   result.State.SearchTerm(),
		Sort:         string(result.State.SortOption()),
		Page:         result.State.CurrentPage(),
		PageSize:     view.PageSize,
		TotalPages:   result.Page.TotalPages,
		TotalResults: result.Page.TotalResults,
		Products:     products,
	}
}

func ToProductDTO(p domain.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:         p.ID,
		Title:      p.Title,
		Price:      p.Price,
		PriceLabel: p.PriceLabel(),
		Image:      p.Image,
		Category:   p.Category,
		Rating: dto.RatingDTO{
			Rate:  p.Rating.Rate,
			Count: p.Rating.Count,
		},
	}
}
