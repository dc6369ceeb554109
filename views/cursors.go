package views

import "github.com/craftandcarry/admin-api/models"

// StatusCursors tracks one page cursor per order status, so switching
// tabs never resets the position in the other tabs.
type StatusCursors map[string]int

func NewStatusCursors() StatusCursors {
	cursors := make(StatusCursors, len(models.OrderStatuses))
	for _, status := range models.OrderStatuses {
		cursors[status] = 1
	}
	return cursors
}

// Page returns the current cursor for a status, defaulting to 1.
func (c StatusCursors) Page(status string) int {
	if page, ok := c[status]; ok && page >= 1 {
		return page
	}
	return 1
}

func (c StatusCursors) Set(status string, page int) {
	if page < 1 {
		page = 1
	}
	c[status] = page
}

// Clamp resets the cursor to page 1 when it points past the last page
// of the (possibly shrunken) collection. It must be re-applied whenever
// the underlying collection changes, not only on explicit navigation.
func (c StatusCursors) Clamp(status string, totalPages int) int {
	page := c.Page(status)
	if totalPages > 0 && page > totalPages {
		page = 1
		c[status] = page
	}
	return page
}
