package httpserver

const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 100
)

func NormalizePage(page, pageSize int) (normalizedPage, normalizedSize, offset int) { //nolint:nonamedreturns
	if page < 1 {
		page = DefaultPage
	}

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	} else if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return page, pageSize, (page - 1) * pageSize
}

func NewPagination(page, pageSize, totalCount int) *Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// Paginate cuts the requested page out of an in-memory list. A page past the
// end yields an empty, non-nil slice.
func Paginate[T any](items []T, page, pageSize int) ([]T, *Pagination) {
	page, pageSize, offset := NormalizePage(page, pageSize)

	start := min(offset, len(items))
	end := min(start+pageSize, len(items))

	window := make([]T, end-start)
	copy(window, items[start:end])

	return window, NewPagination(page, pageSize, len(items))
}
