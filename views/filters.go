package views

import "github.com/craftandcarry/admin-api/models"

// FilterItemsByCategory keeps items in the given category. An empty
// category keeps everything.
func FilterItemsByCategory(items []models.Item, category string) []models.Item {
	if category == "" {
		return items
	}
	filtered := make([]models.Item, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterOrdersByStatus keeps orders in the given status. An empty
// status keeps everything.
func FilterOrdersByStatus(orders []models.Order, status string) []models.Order {
	if status == "" {
		return orders
	}
	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if order.OrderStatus == status {
			filtered = append(filtered, order)
		}
	}
	return filtered
}
