package stores

import (
	"context"
	"errors"
	"sync"

	"github.com/craftandcarry/admin-api/models"
)

// ErrSameStatus rejects a status update that would not change anything;
// no network call is made in that case.
var ErrSameStatus = errors.New("order is already in that status")

// OrderAPI is what the store needs from the orders resource client.
type OrderAPI interface {
	ListOrders(ctx context.Context, status string) (models.OrdersResult, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) (models.Order, error)
}

// OrderStore holds the fetched orders together with the backend's
// summary counts and revenue figure.
type OrderStore struct {
	client   OrderAPI
	notifier Notifier

	mu           sync.RWMutex
	orders       []models.Order
	summary      models.OrderSummary
	totalRevenue float64
	loading      bool
	lastErr      string
}

func NewOrderStore(client OrderAPI, notifier Notifier) *OrderStore {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &OrderStore{client: client, notifier: notifier}
}

func (s *OrderStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *OrderStore) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *OrderStore) fail(err error, fallback string) {
	message := fallback
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	s.mu.Lock()
	s.lastErr = message
	s.mu.Unlock()
	s.notifier.Error(message)
}

// Fetch replaces orders, summary and revenue with the backend's current
// view, optionally narrowed to one status.
func (s *OrderStore) Fetch(ctx context.Context, status string) error {
	s.begin()
	defer s.end()
	return s.fetch(ctx, status)
}

func (s *OrderStore) fetch(ctx context.Context, status string) error {
	result, err := s.client.ListOrders(ctx, status)
	if err != nil {
		s.fail(err, "Failed to fetch orders")
		return err
	}

	s.mu.Lock()
	s.orders = result.Orders
	s.summary = result.Summary
	s.totalRevenue = result.TotalRevenue
	s.mu.Unlock()
	return nil
}

// UpdateStatus transitions one order. The local replace is eager; the
// follow-up refetch makes summary and revenue authoritative again.
func (s *OrderStore) UpdateStatus(ctx context.Context, orderID, newStatus string) error {
	s.mu.RLock()
	for _, order := range s.orders {
		if order.ID == orderID && order.OrderStatus == newStatus {
			s.mu.RUnlock()
			return ErrSameStatus
		}
	}
	s.mu.RUnlock()

	s.begin()
	defer s.end()

	updated, err := s.client.UpdateOrderStatus(ctx, orderID, newStatus)
	if err != nil {
		s.fail(err, "Failed to update order status")
		return err
	}

	s.mu.Lock()
	for i, order := range s.orders {
		if order.ID == orderID {
			s.orders[i] = updated
		}
	}
	s.mu.Unlock()

	if err := s.fetch(ctx, ""); err != nil {
		return err
	}

	s.notifier.Success("Order status updated to " + newStatus + "!")
	return nil
}

// Orders returns a copy of the current collection.
func (s *OrderStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

func (s *OrderStore) Summary() models.OrderSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

func (s *OrderStore) TotalRevenue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalRevenue
}

func (s *OrderStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *OrderStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
