package query

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageInfo describes one page of a materialized result set.
type PageInfo struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// Normalize clamps page and pageSize to sane values: page is 1-based,
// pageSize defaults to 10 and is capped at 100.
func Normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// TotalPages is ceiling(totalCount / pageSize).
func TotalPages(totalCount, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// Paginate slices one page out of an already materialized result set.
// The total count always reflects the full set, not the returned page:
// list endpoints count first, then slice.
func Paginate[T any](items []T, page, pageSize int) ([]T, PageInfo) {
	page, pageSize = Normalize(page, pageSize)

	info := PageInfo{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: len(items),
		TotalPages: TotalPages(len(items), pageSize),
	}

	skip := (page - 1) * pageSize
	if skip >= len(items) {
		return []T{}, info
	}

	end := skip + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end], info
}
