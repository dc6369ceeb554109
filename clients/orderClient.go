package clients

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/craftandcarry/admin-api/models"
	"github.com/craftandcarry/admin-api/transforms"
)

var errMissingOrder = errors.New("Order data is missing or invalid")

type OrderClient struct {
	api *Client
}

func NewOrderClient(api *Client) *OrderClient {
	return &OrderClient{api: api}
}

type ordersPayload struct {
	Orders       []*transforms.BackendOrder `json:"orders"`
	Pagination   map[string]any             `json:"pagination"`
	Summary      models.OrderSummary        `json:"summary"`
	TotalRevenue float64                    `json:"totalRevenue"`
}

// ListOrders fetches orders plus the backend-computed summary and
// revenue, optionally narrowed to one status. Records the transform
// cannot represent are dropped from the list.
func (c *OrderClient) ListOrders(ctx context.Context, status string) (models.OrdersResult, error) {
	req := c.api.http.R().SetContext(ctx)
	if status != "" {
		req.SetQueryParam("status", status)
	}

	resp, err := req.Get("/orders/all")
	if err != nil {
		log.Println("Error fetching orders:", err)
		return models.OrdersResult{}, err
	}

	var payload ordersPayload
	if err := decodeEnvelope(resp, "Failed to fetch orders", &payload); err != nil {
		log.Println("Error fetching orders:", err)
		return models.OrdersResult{}, err
	}

	return models.OrdersResult{
		Orders:       transforms.ToOrders(payload.Orders),
		Pagination:   payload.Pagination,
		Summary:      payload.Summary,
		TotalRevenue: payload.TotalRevenue,
	}, nil
}

// UpdateOrderStatus moves an order to a new status and returns the
// updated record.
func (c *OrderClient) UpdateOrderStatus(ctx context.Context, orderID, status string) (models.Order, error) {
	body, _ := json.Marshal(map[string]string{"status": status})

	resp, err := c.api.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put("/orders/" + orderID + "/status")
	if err != nil {
		log.Println("Error updating order status:", err)
		return models.Order{}, err
	}

	var raw transforms.BackendOrder
	if err := decodeEnvelope(resp, "Failed to update order status", &raw); err != nil {
		log.Println("Error updating order status:", err)
		return models.Order{}, err
	}

	order, ok := transforms.ToOrder(&raw)
	if !ok {
		err := errMissingOrder
		log.Println("Error updating order status:", err)
		return models.Order{}, err
	}
	return order, nil
}
