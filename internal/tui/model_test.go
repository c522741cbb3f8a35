package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"catalog/internal/domain"
	"catalog/internal/product/store"
	"catalog/internal/product/usecase"
	"catalog/internal/product/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoFunc func(ctx context.Context) ([]domain.Product, error)

func (f repoFunc) FindAll(ctx context.Context) ([]domain.Product, error) { return f(ctx) }

type recordingSender struct {
	msgs []tea.Msg
}

func (s *recordingSender) Send(msg tea.Msg) { s.msgs = append(s.msgs, msg) }

func catalogOf(n int) []domain.Product {
	products := make([]domain.Product, n)
	for i := range products {
		title := fmt.Sprintf("Item %02d", i+1)
		if i%5 == 0 {
			title = fmt.Sprintf("Shirt %02d", i+1)
		}
		products[i] = domain.Product{
			ID:     i + 1,
			Title:  title,
			Price:  float64(n - i),
			Rating: domain.Rating{Rate: float64(i%5) + 0.5},
		}
	}
	return products
}

func newLoadedModel(t *testing.T, n int) (Model, *store.Store) {
	t.Helper()
	st := store.New(zap.NewNop())
	require.NoError(t, st.Fetch(context.Background(), repoFunc(func(context.Context) ([]domain.Product, error) {
		return catalogOf(n), nil
	})))
	return NewModel(usecase.NewBrowseUseCase(st), false), st
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Loading(t *testing.T) {
	m := NewModel(usecase.NewBrowseUseCase(store.New(zap.NewNop())), false)

	assert.Contains(t, m.View(), "Loading products...")
}

func TestModel_ErrorReplacesList(t *testing.T) {
	st := store.New(zap.NewNop())
	require.NoError(t, st.Fetch(context.Background(), repoFunc(func(context.Context) ([]domain.Product, error) {
		return nil, errors.New("request failed with status code 404")
	})))
	m := NewModel(usecase.NewBrowseUseCase(st), false)

	out := m.View()
	assert.Contains(t, out, "request failed with status code 404")
	assert.NotContains(t, out, "Next ›")
}

func TestModel_ShowsFirstPage(t *testing.T) {
	m, _ := newLoadedModel(t, 20)

	out := m.View()
	assert.Contains(t, out, "Shirt 01")
	assert.Contains(t, out, "Item 08")
	assert.NotContains(t, out, "Item 09")
	assert.Contains(t, out, "$20.00")
	assert.Contains(t, out, "Sort: Sort by")
}

func TestModel_Paging(t *testing.T) {
	m, _ := newLoadedModel(t, 20)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.State().CurrentPage())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.State().CurrentPage())

	m = press(t, m, key("l"), key("l"), key("l"))
	assert.Equal(t, 3, m.State().CurrentPage())
	assert.Contains(t, m.View(), "Item 20")

	m = press(t, m, key("h"))
	assert.Equal(t, 2, m.State().CurrentPage())
}

func TestModel_SortCyclesAndResetsPage(t *testing.T) {
	m, _ := newLoadedModel(t, 20)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 2, m.State().CurrentPage())

	m = press(t, m, key("s"))
	assert.Equal(t, view.SortPriceAsc, m.State().SortOption())
	assert.Equal(t, 1, m.State().CurrentPage())
	assert.Contains(t, m.View(), "Sort: Price: Low to High")
	assert.Contains(t, m.View(), "$1.00")

	m = press(t, m, key("s"), key("s"), key("s"))
	assert.Equal(t, view.SortDefault, m.State().SortOption())
}

func TestModel_SearchFiltersAndResetsPage(t *testing.T) {
	m, _ := newLoadedModel(t, 20)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	m = press(t, m, key("/"), key("SHIRT"))
	assert.Equal(t, "SHIRT", m.State().SearchTerm())
	assert.Equal(t, 1, m.State().CurrentPage())

	// keys are text while the input has focus
	m = press(t, m, key("q"))
	assert.Equal(t, "SHIRTq", m.State().SearchTerm())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEnter})
	out := m.View()
	assert.Contains(t, out, "Shirt 01")
	assert.Contains(t, out, "Shirt 16")
	assert.NotContains(t, out, "Item 02")

	m = press(t, m, key("/"), key("zzz"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), "No products found.")
	assert.NotContains(t, m.View(), "Next ›")
}

func TestModel_SearchAcceptsLongTerms(t *testing.T) {
	m, _ := newLoadedModel(t, 3)
	term := strings.Repeat("long search ", 20)

	m = press(t, m, key("/"), key(term))

	assert.Equal(t, term, m.State().SearchTerm())
}

func TestModel_ThemeToggle(t *testing.T) {
	m, _ := newLoadedModel(t, 3)
	require.False(t, m.Dark())

	m = press(t, m, key("t"))
	assert.True(t, m.Dark())

	m = press(t, m, key("t"))
	assert.False(t, m.Dark())
}

func TestModel_Quit(t *testing.T) {
	m, _ := newLoadedModel(t, 3)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSubscribe_ForwardsStoreChanges(t *testing.T) {
	st := store.New(zap.NewNop())
	sender := &recordingSender{}
	cancel := Subscribe(st, sender)

	require.NoError(t, st.Fetch(context.Background(), repoFunc(func(context.Context) ([]domain.Product, error) {
		return catalogOf(1), nil
	})))
	cancel()

	assert.Equal(t, []tea.Msg{
		StoreChangedMsg{Status: store.StatusLoading},
		StoreChangedMsg{Status: store.StatusSuccess},
	}, sender.msgs)
}
