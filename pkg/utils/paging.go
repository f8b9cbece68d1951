package utils

// Pagination converts 1-based page params into limit/offset, defaulting to
// 10 items per page.
func Pagination(page, size int) (limit, offset int) {
	limit = size
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	offset = (page - 1) * limit
	return limit, offset
}

func TotalPages(totalItems int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(totalItems) / limit
	if int(totalItems)%limit != 0 {
		pages++
	}
	return pages
}
