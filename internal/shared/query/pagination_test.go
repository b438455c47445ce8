package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"defaults for zero values", 0, 0, 1, 10},
		{"negative page", -3, 20, 1, 20},
		{"oversized page size capped", 1, 500, 1, 100},
		{"valid values untouched", 4, 25, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := Normalize(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(7, 3))
}

func TestPaginate(t *testing.T) {
	items := []int{10, 20, 30, 40, 50, 60, 70}

	t.Run("middle page slices the right window", func(t *testing.T) {
		page, info := Paginate(items, 2, 3)

		assert.Equal(t, []int{40, 50, 60}, page)
		assert.Equal(t, 7, info.TotalCount)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, 2, info.Page)
		assert.Equal(t, 3, info.PageSize)
	})

	t.Run("last partial page", func(t *testing.T) {
		page, info := Paginate(items, 3, 3)

		assert.Equal(t, []int{70}, page)
		assert.Equal(t, 7, info.TotalCount)
	})

	t.Run("page beyond the set is empty but keeps totals", func(t *testing.T) {
		page, info := Paginate(items, 9, 3)

		assert.Empty(t, page)
		assert.Equal(t, 7, info.TotalCount)
		assert.Equal(t, 3, info.TotalPages)
	})

	t.Run("empty input", func(t *testing.T) {
		page, info := Paginate([]int{}, 1, 10)

		assert.Empty(t, page)
		assert.Equal(t, 0, info.TotalCount)
		assert.Equal(t, 0, info.TotalPages)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "plain", EscapeLike("plain"))
	assert.Equal(t, `100\%`, EscapeLike("100%"))
	assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	assert.Equal(t, `back\\slash`, EscapeLike(`back\slash`))
}
