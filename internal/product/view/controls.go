package view

// Controls describes the Previous / page numbers / Next bar.
type Controls struct {
	Visible      bool
	Current      int
	Pages        []int
	Prev         int
	Next         int
	PrevDisabled bool
	NextDisabled bool
}

// NewControls mirrors the pagination bar: Previous steps back but not below
// 1, Next steps forward but not past the last page. Nothing is shown for an
// empty result set.
func NewControls(current, totalPages int) Controls {
	if totalPages <= 0 {
		return Controls{Current: current}
	}

	pages := make([]int, totalPages)
	for i := range pages {
		pages[i] = i + 1
	}

	return Controls{
		Visible:      true,
		Current:      current,
		Pages:        pages,
		Prev:         max(current-1, 1),
		Next:         min(current+1, totalPages),
		PrevDisabled: current == 1,
		NextDisabled: current == totalPages,
	}
}
