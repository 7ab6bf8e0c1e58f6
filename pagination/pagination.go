// Package pagination provides page arithmetic for list views: a stateful
// navigator, an in-memory Paginator and a helper for offset/limit queries.
package pagination

import (
	"context"
	"fmt"
)

// DefaultPageSize is used whenever a page size below 1 is supplied
const DefaultPageSize = 100

// PageSizes are the page sizes offered by list views
var PageSizes = []int{25, 50, 100, 200, 500}

// TotalPages returns max(1, ceil(total/pageSize))
func TotalPages(total, pageSize int) int {
	pageSize = normalizeSize(pageSize)
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Clamp returns page limited to [1, totalPages]
func Clamp(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

func normalizeSize(n int) int {
	if n < 1 {
		return DefaultPageSize
	}
	return n
}

// State tracks the current page of a list view
type State struct {
	pageSize     int
	currentPage  int
	totalRecords int
	onChange     func(page int)
}

// NewState creates a navigator on page 1. onChange may be nil.
func NewState(pageSize int, onChange func(page int)) *State {
	return &State{
		pageSize:    normalizeSize(pageSize),
		currentPage: 1,
		onChange:    onChange,
	}
}

// Update sets the record count and optionally the page, clamping the page
func (s *State) Update(totalRecords int, page *int) {
	if totalRecords < 0 {
		totalRecords = 0
	}
	s.totalRecords = totalRecords

	target := s.currentPage
	if page != nil {
		target = *page
	}
	s.currentPage = Clamp(target, s.TotalPages())
}

func (s *State) moveTo(page int) {
	page = Clamp(page, s.TotalPages())
	if page == s.currentPage {
		return
	}
	s.currentPage = page
	if s.onChange != nil {
		s.onChange(page)
	}
}

// First moves to page 1
func (s *State) First() { s.moveTo(1) }

// Previous moves back one page
func (s *State) Previous() { s.moveTo(s.currentPage - 1) }

// Next moves forward one page
func (s *State) Next() { s.moveTo(s.currentPage + 1) }

// Last moves to the last page
func (s *State) Last() { s.moveTo(s.TotalPages()) }

// GoTo moves to page n, clamped into range
func (s *State) GoTo(n int) { s.moveTo(n) }

// SetPageSize changes the page size and returns to page 1. The callback
// fires whenever the size actually changes.
func (s *State) SetPageSize(n int) {
	n = normalizeSize(n)
	if n == s.pageSize {
		return
	}
	s.pageSize = n
	s.currentPage = 1
	if s.onChange != nil {
		s.onChange(1)
	}
}

// CurrentPage returns the 1-based current page
func (s *State) CurrentPage() int { return s.currentPage }

// PageSize returns the number of records per page
func (s *State) PageSize() int { return s.pageSize }

// TotalRecords returns the record count from the last Update
func (s *State) TotalRecords() int { return s.totalRecords }

// TotalPages returns max(1, ceil(total_records/page_size))
func (s *State) TotalPages() int {
	return TotalPages(s.totalRecords, s.pageSize)
}

// Offset returns the number of records before the current page
func (s *State) Offset() int {
	return (s.currentPage - 1) * s.pageSize
}

// Limit returns the page size for queries
func (s *State) Limit() int {
	return s.pageSize
}

// HasPrevious reports whether a page precedes the current one
func (s *State) HasPrevious() bool { return s.currentPage > 1 }

// HasNext reports whether a page follows the current one
func (s *State) HasNext() bool { return s.currentPage < s.TotalPages() }

// Label describes the visible range, e.g. "Showing 101-200 of 250 records"
func (s *State) Label() string {
	if s.totalRecords == 0 {
		return "No records"
	}
	start := s.Offset() + 1
	end := min(s.currentPage*s.pageSize, s.totalRecords)
	return fmt.Sprintf("Showing %d-%d of %d records", start, end, s.totalRecords)
}

// PageLabel returns "Page n of m"
func (s *State) PageLabel() string {
	return fmt.Sprintf("Page %d of %d", s.currentPage, s.TotalPages())
}

// PageInfo describes one page of a Paginator
type PageInfo struct {
	PageNumber   int  `json:"page_number"`
	PageSize     int  `json:"page_size"`
	TotalPages   int  `json:"total_pages"`
	TotalRecords int  `json:"total_records"`
	StartRecord  int  `json:"start_record"`
	EndRecord    int  `json:"end_record"`
	HasPrevious  bool `json:"has_previous"`
	HasNext      bool `json:"has_next"`
}

// Paginator pages through an in-memory slice. The slice is not copied.
type Paginator[T any] struct {
	data       []T
	pageSize   int
	totalPages int
}

// New creates a paginator over data
func New[T any](data []T, pageSize int) *Paginator[T] {
	pageSize = normalizeSize(pageSize)
	return &Paginator[T]{
		data:       data,
		pageSize:   pageSize,
		totalPages: TotalPages(len(data), pageSize),
	}
}

// TotalPages returns the number of pages, at least 1
func (p *Paginator[T]) TotalPages() int { return p.totalPages }

// TotalRecords returns the length of the underlying slice
func (p *Paginator[T]) TotalRecords() int { return len(p.data) }

// PageSize returns the number of items per page
func (p *Paginator[T]) PageSize() int { return p.pageSize }

// Page returns the items of page n, clamped into range
func (p *Paginator[T]) Page(n int) []T {
	n = Clamp(n, p.totalPages)
	start := (n - 1) * p.pageSize
	end := min(start+p.pageSize, len(p.data))
	return p.data[start:end]
}

// Info returns the description of page n, clamped into range. On an empty
// collection StartRecord is 1 and EndRecord 0.
func (p *Paginator[T]) Info(n int) PageInfo {
	n = Clamp(n, p.totalPages)
	return PageInfo{
		PageNumber:   n,
		PageSize:     p.pageSize,
		TotalPages:   p.totalPages,
		TotalRecords: len(p.data),
		StartRecord:  (n-1)*p.pageSize + 1,
		EndRecord:    min(n*p.pageSize, len(p.data)),
		HasPrevious:  n > 1,
		HasNext:      n < p.totalPages,
	}
}

// QueryFunc fetches up to limit records starting at offset
type QueryFunc[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// CountFunc returns the total number of records
type CountFunc func(ctx context.Context) (int, error)

// PaginateQuery runs query for one page and returns the page with the total
// record count. When count is nil or fails the total is estimated from the
// page: a short page ends the collection, a full one assumes only the pages
// seen so far exist.
func PaginateQuery[T any](ctx context.Context, query QueryFunc[T], count CountFunc, page, pageSize int) ([]T, int, error) {
	pageSize = normalizeSize(pageSize)
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	results, err := query(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query page %d: %w", page, err)
	}

	if count != nil {
		if total, err := count(ctx); err == nil {
			return results, total, nil
		}
	}

	if len(results) < pageSize {
		return results, offset + len(results), nil
	}
	return results, len(results) * page, nil
}
