package usecase

import (
	"context"
	"fmt"
	"testing"

	"catalog/internal/domain"
	apperrors "catalog/internal/errors"
	"catalog/internal/product/store"
	"catalog/internal/product/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock implementations
type mockStore struct {
	SnapshotFunc func() store.Snapshot
}

func (m *mockStore) Snapshot() store.Snapshot {
	return m.SnapshotFunc()
}

func storeWith(snap store.Snapshot) *mockStore {
	return &mockStore{SnapshotFunc: func() store.Snapshot { return snap }}
}

func catalogOf(n int) []domain.Product {
	products := make([]domain.Product, n)
	for i := range products {
		products[i] = domain.Product{
			ID:     i + 1,
			Title:  fmt.Sprintf("Product %d", i+1),
			Price:  float64(i) + 0.5,
			Rating: domain.Rating{Rate: 4.2, Count: 10},
		}
	}
	return products
}

// Tests

func TestBrowse_Loading(t *testing.T) {
	uc := NewBrowseUseCase(storeWith(store.Snapshot{Status: store.StatusLoading}))

	result := uc.Browse(context.Background(), view.NewState())

	assert.False(t, result.Ready())
	assert.Equal(t, store.StatusLoading, result.Status)
	assert.Empty(t, result.Page.Products)
	assert.False(t, result.Controls.Visible)
}

func TestBrowse_Error(t *testing.T) {
	uc := NewBrowseUseCase(storeWith(store.Snapshot{
		Status:   store.StatusError,
		Products: []domain.Product{},
		Error:    "Failed to fetch products",
	}))

	result := uc.Browse(context.Background(), view.NewState())

	assert.False(t, result.Ready())
	assert.Equal(t, "Failed to fetch products", result.Error)
	assert.Empty(t, result.Page.Products)
}

func TestBrowse_Success(t *testing.T) {
	uc := NewBrowseUseCase(storeWith(store.Snapshot{
		Status:   store.StatusSuccess,
		Products: catalogOf(20),
	}))

	result := uc.Browse(context.Background(), view.NewState().WithPage(3))

	require.True(t, result.Ready())
	assert.Len(t, result.Page.Products, 4)
	assert.Equal(t, 3, result.Page.TotalPages)
	assert.True(t, result.Controls.Visible)
	assert.True(t, result.Controls.NextDisabled)
}

func TestBrowse_ReadsFreshSnapshotEachCall(t *testing.T) {
	calls := 0
	uc := NewBrowseUseCase(&mockStore{SnapshotFunc: func() store.Snapshot {
		calls++
		return store.Snapshot{Status: store.StatusSuccess, Products: catalogOf(calls)}
	}})

	first := uc.Browse(context.Background(), view.NewState())
	second := uc.Browse(context.Background(), view.NewState())

	assert.Equal(t, 1, first.Page.TotalResults)
	assert.Equal(t, 2, second.Page.TotalResults)
}

func TestToResponse(t *testing.T) {
	uc := NewBrowseUseCase(storeWith(store.Snapshot{
		Status:   store.StatusSuccess,
		Products: catalogOf(10),
	}))
	state := view.NewState().WithSortOption(view.SortPriceDesc).WithPage(2)

	resp := ToResponse(uc.Browse(context.Background(), state))

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "priceDesc", resp.Sort)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 8, resp.PageSize)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, 10, resp.TotalResults)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, 2, resp.Products[0].ID)
	assert.Equal(t, "$1.50", resp.Products[0].PriceLabel)
	assert.Equal(t, 1, resp.Products[1].ID)
}

func TestToResponse_EmptyPageIsEmptyArray(t *testing.T) {
	uc := NewBrowseUseCase(storeWith(store.Snapshot{
		Status:   store.StatusSuccess,
		Products: catalogOf(3),
	}))

	resp := ToResponse(uc.Browse(context.Background(), view.NewState().WithSearchTerm("nothing")))

	assert.NotNil(t, resp.Products)
	assert.Empty(t, resp.Products)
	assert.Zero(t, resp.TotalPages)
}

func TestBrowseResult_Err(t *testing.T) {
	loading := NewBrowseUseCase(storeWith(store.Snapshot{Status: store.StatusLoading})).
		Browse(context.Background(), view.NewState())
	_, ok := apperrors.IsUnavailableError(loading.Err())
	assert.True(t, ok)

	failed := NewBrowseUseCase(storeWith(store.Snapshot{
		Status: store.StatusError,
		Error:  "request failed with status code 503",
	})).Browse(context.Background(), view.NewState())
	fe, ok := apperrors.IsFetchError(failed.Err())
	require.True(t, ok)
	assert.Equal(t, "request failed with status code 503", fe.Error())

	ready := NewBrowseUseCase(storeWith(store.Snapshot{
		Status:   store.StatusSuccess,
		Products: catalogOf(3),
	})).Browse(context.Background(), view.NewState())
	assert.NoError(t, ready.Err())
}
