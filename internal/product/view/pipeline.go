// Package view derives the displayed page of products from the fetched
// catalog and the view state: filter, then sort, then paginate.
package view

import (
	"cmp"
	"slices"
	"strings"

	"catalog/internal/domain"
)

// PageSize is fixed; it is not user-configurable.
const PageSize = 8

type Page struct {
	Products     []domain.Product
	CurrentPage  int
	TotalPages   int
	TotalResults int
}

// Apply runs the pipeline. It never modifies products and holds no state,
// so identical inputs always yield identical pages.
func Apply(products []domain.Product, state State) Page {
	filtered := Filter(products, state.SearchTerm())
	sorted := Sort(filtered, state.SortOption())
	return Paginate(sorted, state.CurrentPage(), PageSize)
}

// Filter keeps products whose title contains term, ignoring case. An empty
// term keeps everything.
func Filter(products []domain.Product, term string) []domain.Product {
	needle := strings.ToLower(term)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Sort returns a stably sorted copy; equal keys keep their input order.
func Sort(products []domain.Product, opt SortOption) []domain.Product {
	out := slices.Clone(products)
	if cmpFn := comparator(opt); cmpFn != nil {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}

func comparator(opt SortOption) func(a, b domain.Product) int {
	switch opt {
	case SortPriceAsc:
		return func(a, b domain.Product) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceDesc:
		return func(a, b domain.Product) int { return cmp.Compare(b.Price, a.Price) }
	case SortRating:
		return func(a, b domain.Product) int { return cmp.Compare(b.Rating.Rate, a.Rating.Rate) }
	default:
		return nil
	}
}

// TotalPages is ceil(count/size); zero results means zero pages.
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Paginate slices out page (1-based). A page outside 1..TotalPages yields an
// empty slice; the page number is reported unchanged.
func Paginate(products []domain.Product, page, size int) Page {
	result := Page{
		Products:     []domain.Product{},
		CurrentPage:  page,
		TotalPages:   TotalPages(len(products), size),
		TotalResults: len(products),
	}
	if page < 1 || size <= 0 {
		return result
	}

	start := (page - 1) * size
	if start >= len(products) {
		return result
	}
	end := min(start+size, len(products))
	result.Products = slices.Clone(products[start:end])
	return result
}
