package views

// Fixed page sizes the dashboard renders with.
const (
	ItemsPerPage  = 3
	OrdersPerPage = 4
)

// Paginate returns the 1-indexed page window [(page-1)*size, page*size)
// of the collection. Out-of-range pages yield an empty slice.
func Paginate[T any](collection []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(collection) {
		return []T{}
	}
	end := start + size
	if end > len(collection) {
		end = len(collection)
	}
	return collection[start:end]
}

// ClampPage resets an active page to 1 when it points past the last
// page, which happens when the underlying collection shrinks.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return 1
	}
	return page
}

// TotalPages is ceil(count/size); zero for an empty collection.
func TotalPages(count, size int) int {
	if count <= 0 || size < 1 {
		return 0
	}
	return (count + size - 1) / size
}
