package query

import "restaurant-analytics/internal/domain"

// normalizePaging applies the permissive coercion used by every list
// endpoint: pages start at 1 and a non-positive limit falls back to the
// default for that endpoint.
func normalizePaging(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = domain.DefaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// Paginate slices one page out of items. page and limit must already be
// positive. Pages past the end are empty but still report the totals.
func Paginate[T any](items []T, page, limit int) domain.PaginationResult[T] {
	total := len(items)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	pageItems := []T{}
	if page <= totalPages {
		offset := (page - 1) * limit
		end := min(offset+limit, total)
		pageItems = append(pageItems, items[offset:end]...)
	}

	return domain.PaginationResult[T]{
		Items: pageItems,
		Pagination: domain.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalItems:  total,
			PerPage:     limit,
		},
	}
}
