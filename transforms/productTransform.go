package transforms

import (
	"strings"

	"github.com/craftandcarry/admin-api/models"
)

// BackendProduct is the raw product record as the storefront backend
// returns it. Pointer fields distinguish "absent" from zero values.
type BackendProduct struct {
	ID              string   `json:"_id"`
	CategoryName    string   `json:"categoryName"`
	ItemName        string   `json:"itemName"`
	ItemDescription string   `json:"itemDescription"`
	ItemFeatures    []string `json:"itemFeatures"`
	ItemPrice       *float64 `json:"itemPrice"`
	Discount        *float64 `json:"discount"`
	Gender          string   `json:"gender"`
	ItemImageURL    string   `json:"itemImageUrl"`
}

// ToItem normalizes a raw backend product into a domain Item. Missing
// fields become explicit defaults so callers never see partial records.
func ToItem(raw BackendProduct) models.Item {
	item := models.Item{
		ID:          raw.ID,
		Name:        raw.ItemName,
		Category:    raw.CategoryName,
		Description: raw.ItemDescription,
		Features:    raw.ItemFeatures,
		Gender:      strings.ToLower(raw.Gender),
		Image:       raw.ItemImageURL,
	}
	if item.Features == nil {
		item.Features = []string{}
	}
	if raw.ItemPrice != nil {
		item.Price = *raw.ItemPrice
	}
	if raw.Discount != nil {
		item.Discount = *raw.Discount
	}
	return item
}

// ToItems maps a raw product list into domain Items.
func ToItems(raws []BackendProduct) []models.Item {
	items := make([]models.Item, 0, len(raws))
	for _, raw := range raws {
		items = append(items, ToItem(raw))
	}
	return items
}
