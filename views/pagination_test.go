package views

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatePartitionsWithoutOverlapOrGaps(t *testing.T) {
	for _, size := range []int{1, 3, 4, 6} {
		for count := 0; count <= 13; count++ {
			collection := make([]int, count)
			for i := range collection {
				collection[i] = i
			}

			var rejoined []int
			for page := 1; page <= TotalPages(count, size); page++ {
				rejoined = append(rejoined, Paginate(collection, page, size)...)
			}

			assert.Equal(t, collection, append([]int{}, rejoined...),
				fmt.Sprintf("count=%d size=%d", count, size))
		}
	}
}

func TestPaginateWindow(t *testing.T) {
	collection := []string{"a", "b", "c", "d", "e"}

	assert.Equal(t, []string{"a", "b", "c"}, Paginate(collection, 1, 3))
	assert.Equal(t, []string{"d", "e"}, Paginate(collection, 2, 3))
	assert.Empty(t, Paginate(collection, 3, 3))
	assert.Empty(t, Paginate(collection, 0, 3))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 3))
	assert.Equal(t, 1, TotalPages(1, 3))
	assert.Equal(t, 1, TotalPages(3, 3))
	assert.Equal(t, 2, TotalPages(4, 3))
	assert.Equal(t, 3, TotalPages(12, 4))
}

func TestClampPageResetsAfterCollectionShrinks(t *testing.T) {
	// 4 items at page size 3, viewing page 2; deleting the 4th item
	// leaves 1 page, so the cursor resets to page 1.
	page := 2
	totalPages := TotalPages(4, ItemsPerPage)
	assert.Equal(t, 2, ClampPage(page, totalPages))

	totalPages = TotalPages(3, ItemsPerPage)
	assert.Equal(t, 1, ClampPage(page, totalPages))
}

func TestClampPageKeepsValidPages(t *testing.T) {
	assert.Equal(t, 1, ClampPage(1, 0))
	assert.Equal(t, 1, ClampPage(0, 5))
	assert.Equal(t, 4, ClampPage(4, 5))
	assert.Equal(t, 5, ClampPage(5, 5))
	assert.Equal(t, 1, ClampPage(6, 5))
}
