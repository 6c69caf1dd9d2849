package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginatePageCount(t *testing.T) {
	cases := []struct {
		total int
		pages int
	}{
		{0, 0},
		{1, 1},
		{9, 1},
		{10, 1},
		{11, 2},
		{25, 3},
		{100, 10},
	}
	for _, tc := range cases {
		p := Paginate(tc.total, 1, 10)
		assert.Equal(t, tc.pages, p.TotalPages, "total=%d", tc.total)
	}
}

func TestPaginateCoversEveryRowOnce(t *testing.T) {
	items := make([]int, 37)
	for i := range items {
		items[i] = i
	}
	first := Paginate(len(items), 1, 10)
	var seen []int
	for page := 1; page <= first.TotalPages; page++ {
		seen = append(seen, PageOf(items, Paginate(len(items), page, 10))...)
	}
	require.Equal(t, items, seen)
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	p := Paginate(25, 9, 10)
	assert.Equal(t, 3, p.Page)
	assert.False(t, p.HasNext())
	assert.True(t, p.HasPrev())
	assert.Equal(t, 3, p.NextPage())
	assert.Equal(t, []int{20, 21, 22, 23, 24}, PageOf(seq(25), p))

	p = Paginate(25, -4, 10)
	assert.Equal(t, 1, p.Page)
	assert.False(t, p.HasPrev())
	assert.Equal(t, 1, p.PrevPage())
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate(0, 1, 10)
	assert.Equal(t, 1, p.Page)
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())
	assert.Empty(t, PageOf([]string{}, p))
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
