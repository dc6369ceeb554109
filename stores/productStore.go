package stores

import (
	"context"
	"sync"

	"github.com/craftandcarry/admin-api/clients"
	"github.com/craftandcarry/admin-api/models"
)

// ProductAPI is what the store needs from the products resource client.
type ProductAPI interface {
	ListProducts(ctx context.Context, category string) ([]models.Item, error)
	CreateProduct(ctx context.Context, form clients.ProductForm) (models.Item, error)
	UpdateProduct(ctx context.Context, productID string, form clients.ProductForm) (models.Item, error)
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductStore holds the dashboard's transient copy of the catalog.
// The collection is only a cache of the backend's state, refreshed on
// startup and merged after each confirmed mutation.
type ProductStore struct {
	client   ProductAPI
	notifier Notifier

	mu      sync.RWMutex
	items   []models.Item
	loading bool
	lastErr string
}

func NewProductStore(client ProductAPI, notifier Notifier) *ProductStore {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &ProductStore{client: client, notifier: notifier}
}

func (s *ProductStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *ProductStore) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *ProductStore) fail(err error, fallback string) {
	message := fallback
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	s.mu.Lock()
	s.lastErr = message
	s.mu.Unlock()
	s.notifier.Error(message)
}

// Fetch replaces the collection with the backend's current catalog,
// optionally narrowed to one category.
func (s *ProductStore) Fetch(ctx context.Context, category string) error {
	s.begin()
	defer s.end()

	items, err := s.client.ListProducts(ctx, category)
	if err != nil {
		s.fail(err, "Failed to fetch products")
		return err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Create posts the form and appends the confirmed item.
func (s *ProductStore) Create(ctx context.Context, form clients.ProductForm) (models.Item, error) {
	s.begin()
	defer s.end()

	item, err := s.client.CreateProduct(ctx, form)
	if err != nil {
		s.fail(err, "Failed to create product")
		return models.Item{}, err
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
	s.notifier.Success("Product created successfully!")
	return item, nil
}

// Update sends the form and replaces the matching item in place.
func (s *ProductStore) Update(ctx context.Context, productID string, form clients.ProductForm) (models.Item, error) {
	s.begin()
	defer s.end()

	updated, err := s.client.UpdateProduct(ctx, productID, form)
	if err != nil {
		s.fail(err, "Failed to update product")
		return models.Item{}, err
	}

	s.mu.Lock()
	for i, item := range s.items {
		if item.ID == productID {
			s.items[i] = updated
		}
	}
	s.mu.Unlock()
	s.notifier.Success("Product updated successfully!")
	return updated, nil
}

// Delete removes the item once the backend confirms.
func (s *ProductStore) Delete(ctx context.Context, productID string) error {
	s.begin()
	defer s.end()

	if err := s.client.DeleteProduct(ctx, productID); err != nil {
		s.fail(err, "Failed to delete product")
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notifier.Success("Product deleted successfully!")
	return nil
}

// Items returns a copy of the current collection.
func (s *ProductStore) Items() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Item, len(s.items))
	copy(items, s.items)
	return items
}

func (s *ProductStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the message of the last failed operation, empty after a
// success or a fresh mutation start.
func (s *ProductStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
