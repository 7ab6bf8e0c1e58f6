package pagination

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 100, 1},
		{1, 100, 1},
		{100, 100, 1},
		{101, 100, 2},
		{250, 100, 3},
		{250, 0, 3}, // coerced to default size
		{7, 1, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.size), "total=%d size=%d", tt.total, tt.size)
	}
}

func TestPaginator_LastPartialPage(t *testing.T) {
	p := New(seq(250), 100)
	require.Equal(t, 3, p.TotalPages())

	page := p.Page(3)
	require.Len(t, page, 50)
	assert.Equal(t, 201, page[0])
	assert.Equal(t, 250, page[49])

	info := p.Info(3)
	assert.Equal(t, PageInfo{
		PageNumber:   3,
		PageSize:     100,
		TotalPages:   3,
		TotalRecords: 250,
		StartRecord:  201,
		EndRecord:    250,
		HasPrevious:  true,
		HasNext:      false,
	}, info)
}

func TestPaginator_PageLengths(t *testing.T) {
	for _, total := range []int{0, 1, 99, 100, 101, 250, 1000} {
		for _, size := range []int{1, 7, 25, 100} {
			p := New(seq(total), size)
			pages := p.TotalPages()
			sum := 0
			for n := 1; n <= pages; n++ {
				got := len(p.Page(n))
				if n < pages {
					assert.Equal(t, size, got, "total=%d size=%d page=%d", total, size, n)
				} else {
					assert.Equal(t, total-(pages-1)*size, got, "total=%d size=%d last page", total, size)
				}
				sum += got
			}
			assert.Equal(t, total, sum)
		}
	}
}

func TestPaginator_ClampsPage(t *testing.T) {
	p := New(seq(30), 10)

	assert.Equal(t, p.Page(1), p.Page(0))
	assert.Equal(t, p.Page(1), p.Page(-4))
	assert.Equal(t, p.Page(3), p.Page(99))
	assert.Equal(t, 3, p.Info(99).PageNumber)

	empty := New([]string{}, 10)
	assert.Empty(t, empty.Page(1))
	info := empty.Info(1)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, 0, info.EndRecord)
	assert.False(t, info.HasNext)
	assert.False(t, info.HasPrevious)
}

func TestState_Navigation(t *testing.T) {
	var changes []int
	s := NewState(100, func(page int) { changes = append(changes, page) })
	s.Update(250, nil)

	assert.Equal(t, 1, s.CurrentPage())
	assert.Equal(t, 3, s.TotalPages())
	assert.False(t, s.HasPrevious())
	assert.True(t, s.HasNext())

	s.Previous() // already first, no change
	s.First()
	s.Next()
	s.Next()
	s.Next() // already last
	assert.Equal(t, 3, s.CurrentPage())
	assert.Equal(t, 200, s.Offset())
	assert.Equal(t, 100, s.Limit())
	assert.Equal(t, "Showing 201-250 of 250 records", s.Label())
	assert.Equal(t, "Page 3 of 3", s.PageLabel())

	s.Last()
	s.GoTo(-5)
	s.GoTo(2)
	assert.Equal(t, []int{2, 3, 1, 2}, changes)
}

func TestState_UpdateClamps(t *testing.T) {
	s := NewState(10, nil)
	s.Update(95, intPtr(7))
	assert.Equal(t, 7, s.CurrentPage())

	// Shrinking the collection pulls the page back into range
	s.Update(25, nil)
	assert.Equal(t, 3, s.CurrentPage())

	s.Update(25, intPtr(0))
	assert.Equal(t, 1, s.CurrentPage())

	s.Update(0, intPtr(5))
	assert.Equal(t, 1, s.CurrentPage())
	assert.Equal(t, 1, s.TotalPages())
	assert.Equal(t, "No records", s.Label())

	s.Update(-3, nil)
	assert.Equal(t, 0, s.TotalRecords())
}

func TestState_InvariantHoldsAfterAnyMove(t *testing.T) {
	s := NewState(7, nil)
	moves := []func(){s.First, s.Next, s.Previous, s.Last, func() { s.GoTo(1000) }, func() { s.GoTo(-1) }}

	for _, total := range []int{0, 1, 6, 7, 8, 49, 50} {
		s.Update(total, nil)
		for _, move := range moves {
			move()
			assert.GreaterOrEqual(t, s.CurrentPage(), 1)
			assert.LessOrEqual(t, s.CurrentPage(), s.TotalPages())
		}
	}
}

func TestState_SetPageSize(t *testing.T) {
	var changes []int
	s := NewState(0, func(page int) { changes = append(changes, page) })
	assert.Equal(t, DefaultPageSize, s.PageSize())

	s.Update(500, intPtr(4))
	s.SetPageSize(100) // unchanged
	assert.Equal(t, 4, s.CurrentPage())
	assert.Empty(t, changes)

	s.SetPageSize(50)
	assert.Equal(t, 1, s.CurrentPage())
	assert.Equal(t, 10, s.TotalPages())
	assert.Equal(t, []int{1}, changes)
}

func TestPaginateQuery(t *testing.T) {
	ctx := context.Background()
	data := seq(250)

	query := func(_ context.Context, offset, limit int) ([]int, error) {
		if offset >= len(data) {
			return nil, nil
		}
		return data[offset:min(offset+limit, len(data))], nil
	}
	count := func(context.Context) (int, error) { return len(data), nil }

	page, total, err := PaginateQuery(ctx, query, count, 3, 100)
	require.NoError(t, err)
	assert.Equal(t, 250, total)
	assert.Len(t, page, 50)
	assert.Equal(t, 201, page[0])

	// Count failure falls back to an estimate
	failing := func(context.Context) (int, error) { return 0, errors.New("no count") }

	_, total, err = PaginateQuery(ctx, query, failing, 3, 100)
	require.NoError(t, err)
	assert.Equal(t, 250, total)

	_, total, err = PaginateQuery(ctx, query, nil, 2, 100)
	require.NoError(t, err)
	assert.Equal(t, 200, total)

	// Query failure is returned
	queryErr := errors.New("db down")
	_, _, err = PaginateQuery(ctx, func(context.Context, int, int) ([]int, error) { return nil, queryErr }, count, 1, 10)
	assert.ErrorIs(t, err, queryErr)
}
