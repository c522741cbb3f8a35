package view

import "strings"

type SortOption string

const (
	SortDefault   SortOption = "default"
	SortPriceAsc  SortOption = "price"
	SortPriceDesc SortOption = "priceDesc"
	SortRating    SortOption = "rating"
)

// SortOptions lists the selector entries in display order.
var SortOptions = []SortOption{SortDefault, SortPriceAsc, SortPriceDesc, SortRating}

func (o SortOption) Label() string {
	switch o {
	case SortPriceAsc:
		return "Price: Low to High"
	case SortPriceDesc:
		return "Price: High to Low"
	case SortRating:
		return "Highest Rated"
	default:
		return "Sort by"
	}
}

func (o SortOption) Valid() bool {
	switch o {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortRating:
		return true
	}
	return false
}

// Next cycles through SortOptions.
func (o SortOption) Next() SortOption {
	for i, opt := range SortOptions {
		if opt == o {
			return SortOptions[(i+1)%len(SortOptions)]
		}
	}
	return SortDefault
}

// ParseSortOption maps a raw selector value to a SortOption. Empty input is
// the default option; unknown values report ok=false.
func ParseSortOption(raw string) (SortOption, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SortDefault, true
	}
	opt := SortOption(raw)
	if !opt.Valid() {
		return SortDefault, false
	}
	return opt, true
}

// State is the client-only view state. Its setters keep the invariant that
// a new search term or sort option always starts over at page 1.
type State struct {
	searchTerm  string
	sortOption  SortOption
	currentPage int
}

func NewState() State {
	return State{sortOption: SortDefault, currentPage: 1}
}

func (s State) SearchTerm() string     { return s.searchTerm }
func (s State) SortOption() SortOption { return s.sortOption }
func (s State) CurrentPage() int       { return s.currentPage }

func (s State) WithSearchTerm(term string) State {
	s.searchTerm = term
	s.currentPage = 1
	return s
}

func (s State) WithSortOption(opt SortOption) State {
	s.sortOption = opt
	s.currentPage = 1
	return s
}

// WithPage moves to page. Values below 1 are ignored; values beyond the
// last page are kept as-is and produce an empty page.
func (s State) WithPage(page int) State {
	if page < 1 {
		return s
	}
	s.currentPage = page
	return s
}
