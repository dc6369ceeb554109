package models

// Catalog categories sold by the shop.
const (
	CategoryBags   = "Bags"
	CategoryPurses = "Purses"
	CategoryBelts  = "Belts"
)

// Target audience for an item.
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderUnisex = "unisex"
)

type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Price       float64  `json:"price"`
	Discount    float64  `json:"discount"`
	Gender      string   `json:"gender"`
	Image       string   `json:"image"`
}

func IsValidCategory(category string) bool {
	switch category {
	case CategoryBags, CategoryPurses, CategoryBelts:
		return true
	}
	return false
}
