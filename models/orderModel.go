package models

// Order lifecycle statuses. Orders arrive as "processing" from the
// storefront; the admin moves them forward or cancels them.
const (
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Payment statuses reported by the storefront.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment methods reported by the storefront.
const (
	PaymentMethodCOD    = "cod"
	PaymentMethodOnline = "online"
	PaymentMethodCard   = "card"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []string{StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}

type OrderUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ProductSnapshot is the denormalized product reference kept on an order
// line; it is not a live link into the catalog.
type ProductSnapshot struct {
	ID           string `json:"id"`
	CategoryName string `json:"categoryName"`
	ItemName     string `json:"itemName"`
	ItemImageURL string `json:"itemImageUrl"`
}

type OrderItem struct {
	ID        string          `json:"id"`
	Product   ProductSnapshot `json:"productId"`
	ItemName  string          `json:"itemName"`
	ItemPrice float64         `json:"itemPrice"`
	Quantity  int             `json:"quantity"`
}

type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

type Order struct {
	ID              string          `json:"id"`
	User            OrderUser       `json:"userId"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	TotalAmount     float64         `json:"totalAmount"`
	OrderStatus     string          `json:"orderStatus"`
	PaymentStatus   string          `json:"paymentStatus"`
	PaymentMethod   string          `json:"paymentMethod"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

// OrderSummary carries the backend-computed per-status counts. It is
// passed through to the dashboard unmodified.
type OrderSummary struct {
	Total      int `json:"total"`
	Processing int `json:"processing"`
	Shipped    int `json:"shipped"`
	Delivered  int `json:"delivered"`
	Cancelled  int `json:"cancelled"`
}

// OrdersResult is everything a single orders fetch returns.
type OrdersResult struct {
	Orders       []Order        `json:"orders"`
	Pagination   map[string]any `json:"pagination"`
	Summary      OrderSummary   `json:"summary"`
	TotalRevenue float64        `json:"totalRevenue"`
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
