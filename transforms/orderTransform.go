package transforms

import (
	"time"

	"github.com/craftandcarry/admin-api/models"
)

// Raw order shapes as the storefront backend serializes them. Nested
// objects are pointers so a missing sub-object can be told apart from
// an empty one.
type BackendOrderUser struct {
	ID          string `json:"_id"`
	UserName    string `json:"userName"`
	UserEmail   string `json:"userEmail"`
	PhoneNumber string `json:"phoneNumber"`
}

type BackendOrderProduct struct {
	ID           string `json:"_id"`
	CategoryName string `json:"categoryName"`
	ItemName     string `json:"itemName"`
	ItemImageURL string `json:"itemImageUrl"`
}

type BackendOrderItem struct {
	ID        string               `json:"_id"`
	Product   *BackendOrderProduct `json:"productId"`
	ItemName  string               `json:"itemName"`
	ItemPrice *float64             `json:"itemPrice"`
	Quantity  *int                 `json:"quantity"`
}

type BackendShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

type BackendOrder struct {
	ID              string                  `json:"_id"`
	User            *BackendOrderUser       `json:"userId"`
	Items           []BackendOrderItem      `json:"items"`
	ShippingAddress *BackendShippingAddress `json:"shippingAddress"`
	TotalAmount     *float64                `json:"totalAmount"`
	OrderStatus     string                  `json:"orderStatus"`
	PaymentStatus   string                  `json:"paymentStatus"`
	PaymentMethod   string                  `json:"paymentMethod"`
	CreatedAt       string                  `json:"createdAt"`
	UpdatedAt       string                  `json:"updatedAt"`
}

// ToOrder normalizes a raw backend order. A record with no identifier
// is not representable: ok is false and the caller must drop it. Every
// other missing field, nested or not, gets an explicit default so a
// partially malformed record never breaks rendering.
func ToOrder(raw *BackendOrder) (models.Order, bool) {
	if raw == nil || raw.ID == "" {
		return models.Order{}, false
	}

	order := models.Order{
		ID:            raw.ID,
		User:          models.OrderUser{Name: "Unknown"},
		Items:         make([]models.OrderItem, 0, len(raw.Items)),
		OrderStatus:   raw.OrderStatus,
		PaymentStatus: raw.PaymentStatus,
		PaymentMethod: raw.PaymentMethod,
		CreatedAt:     raw.CreatedAt,
		UpdatedAt:     raw.UpdatedAt,
	}

	if raw.User != nil {
		order.User = models.OrderUser{
			ID:    raw.User.ID,
			Name:  raw.User.UserName,
			Email: raw.User.UserEmail,
			Phone: raw.User.PhoneNumber,
		}
		if order.User.Name == "" {
			order.User.Name = "Unknown"
		}
	}

	for _, rawItem := range raw.Items {
		item := models.OrderItem{
			ID:       rawItem.ID,
			ItemName: rawItem.ItemName,
		}
		if rawItem.Product != nil {
			item.Product = models.ProductSnapshot{
				ID:           rawItem.Product.ID,
				CategoryName: rawItem.Product.CategoryName,
				ItemName:     rawItem.Product.ItemName,
				ItemImageURL: rawItem.Product.ItemImageURL,
			}
		}
		if rawItem.ItemPrice != nil {
			item.ItemPrice = *rawItem.ItemPrice
		}
		if rawItem.Quantity != nil {
			item.Quantity = *rawItem.Quantity
		}
		order.Items = append(order.Items, item)
	}

	if raw.ShippingAddress != nil {
		order.ShippingAddress = models.ShippingAddress{
			Street:  raw.ShippingAddress.Street,
			City:    raw.ShippingAddress.City,
			State:   raw.ShippingAddress.State,
			Pincode: raw.ShippingAddress.Pincode,
			Phone:   raw.ShippingAddress.Phone,
		}
	}

	if raw.TotalAmount != nil {
		order.TotalAmount = *raw.TotalAmount
	}
	if order.OrderStatus == "" {
		order.OrderStatus = models.StatusProcessing
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = models.PaymentPending
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = models.PaymentMethodCOD
	}

	now := time.Now().Format(time.RFC3339)
	if order.CreatedAt == "" {
		order.CreatedAt = now
	}
	if order.UpdatedAt == "" {
		order.UpdatedAt = now
	}

	return order, true
}

// ToOrders maps a raw order list, silently dropping records that have
// no identifier.
func ToOrders(raws []*BackendOrder) []models.Order {
	orders := make([]models.Order, 0, len(raws))
	for _, raw := range raws {
		if order, ok := ToOrder(raw); ok {
			orders = append(orders, order)
		}
	}
	return orders
}
