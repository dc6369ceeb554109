package views

import (
	"testing"

	"github.com/craftandcarry/admin-api/models"
	"github.com/stretchr/testify/assert"
)

func TestFilterItemsByCategoryPartitions(t *testing.T) {
	items := []models.Item{
		{ID: "1", Category: models.CategoryBags},
		{ID: "2", Category: models.CategoryPurses},
		{ID: "3", Category: models.CategoryBags},
		{ID: "4", Category: models.CategoryBelts},
	}

	total := 0
	seen := map[string]bool{}
	for _, category := range []string{models.CategoryBags, models.CategoryPurses, models.CategoryBelts} {
		for _, item := range FilterItemsByCategory(items, category) {
			assert.False(t, seen[item.ID], "item appears in exactly one partition")
			seen[item.ID] = true
			total++
		}
	}
	assert.Equal(t, len(items), total, "partitions cover the whole collection")
}

func TestFilterItemsByCategoryIsIdempotent(t *testing.T) {
	items := []models.Item{
		{ID: "1", Category: models.CategoryBags},
		{ID: "2", Category: models.CategoryPurses},
	}

	once := FilterItemsByCategory(items, models.CategoryBags)
	twice := FilterItemsByCategory(once, models.CategoryBags)
	assert.Equal(t, once, twice)
}

func TestFilterItemsEmptyCategoryKeepsAll(t *testing.T) {
	items := []models.Item{{ID: "1"}, {ID: "2"}}
	assert.Equal(t, items, FilterItemsByCategory(items, ""))
}

func TestFilterOrdersByStatusPartitions(t *testing.T) {
	orders := []models.Order{
		{ID: "a", OrderStatus: models.StatusProcessing},
		{ID: "b", OrderStatus: models.StatusShipped},
		{ID: "c", OrderStatus: models.StatusProcessing},
		{ID: "d", OrderStatus: models.StatusDelivered},
		{ID: "e", OrderStatus: models.StatusCancelled},
	}

	total := 0
	seen := map[string]bool{}
	for _, status := range models.OrderStatuses {
		for _, order := range FilterOrdersByStatus(orders, status) {
			assert.False(t, seen[order.ID], "order appears in exactly one partition")
			seen[order.ID] = true
			total++
		}
	}
	assert.Equal(t, len(orders), total)
}
