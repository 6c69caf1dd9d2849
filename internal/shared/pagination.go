package shared

// Pagination describes one page of an in-memory result set.
type Pagination struct {
	Page       int
	PerPage    int
	Total      int
	TotalPages int
	// Start and End bound the page as a half-open slice range.
	Start int
	End   int
}

// Paginate computes page metadata for total items. The page is clamped to
// [1, TotalPages] so a request past the last page lands on the last page.
func Paginate(total, page, perPage int) Pagination {
	if perPage <= 0 {
		perPage = 10
	}
	if total < 0 {
		total = 0
	}
	totalPages := (total + perPage - 1) / perPage
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
	}
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a following page exists.
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

// PrevPage is the page before the current one, never below 1.
func (p Pagination) PrevPage() int {
	if p.HasPrev() {
		return p.Page - 1
	}
	return p.Page
}

// NextPage is the page after the current one, never past the last.
func (p Pagination) NextPage() int {
	if p.HasNext() {
		return p.Page + 1
	}
	return p.Page
}

// PageOf returns the items of the current page. It never copies.
func PageOf[T any](items []T, p Pagination) []T {
	if p.Start >= len(items) {
		return items[:0]
	}
	end := p.End
	if end > len(items) {
		end = len(items)
	}
	return items[p.Start:end]
}
