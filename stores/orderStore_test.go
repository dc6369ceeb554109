package stores

import (
	"context"
	"errors"
	"testing"

	"github.com/craftandcarry/admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderAPI struct {
	result      models.OrdersResult
	updated     models.Order
	listErr     error
	updateErr   error
	listCalls   int
	updateCalls int
}

func (f *fakeOrderAPI) ListOrders(ctx context.Context, status string) (models.OrdersResult, error) {
	f.listCalls++
	return f.result, f.listErr
}

func (f *fakeOrderAPI) UpdateOrderStatus(ctx context.Context, orderID, status string) (models.Order, error) {
	f.updateCalls++
	return f.updated, f.updateErr
}

func TestOrderStoreFetchStoresSummaryAndRevenue(t *testing.T) {
	api := &fakeOrderAPI{result: models.OrdersResult{
		Orders:       []models.Order{{ID: "o-1", OrderStatus: models.StatusProcessing}},
		Summary:      models.OrderSummary{Total: 1, Processing: 1},
		TotalRevenue: 4500,
	}}
	store := NewOrderStore(api, &captureNotifier{})

	require.NoError(t, store.Fetch(context.Background(), ""))

	assert.Len(t, store.Orders(), 1)
	assert.Equal(t, 1, store.Summary().Processing)
	assert.Equal(t, 4500.0, store.TotalRevenue())
	assert.False(t, store.Loading())
}

func TestOrderStoreFetchFailureLeavesStateUntouched(t *testing.T) {
	api := &fakeOrderAPI{result: models.OrdersResult{
		Orders: []models.Order{{ID: "o-1"}},
	}}
	store := NewOrderStore(api, &captureNotifier{})
	require.NoError(t, store.Fetch(context.Background(), ""))

	api.listErr = errors.New("DB down")
	err := store.Fetch(context.Background(), "")
	require.Error(t, err)

	assert.Equal(t, "DB down", store.Err())
	assert.False(t, store.Loading())
	assert.Len(t, store.Orders(), 1, "collection unchanged from before the call")
}

func TestOrderStoreUpdateStatusRefetchesForAuthoritativeSummary(t *testing.T) {
	api := &fakeOrderAPI{
		result: models.OrdersResult{
			Orders:  []models.Order{{ID: "o-1", OrderStatus: models.StatusProcessing}},
			Summary: models.OrderSummary{Total: 1, Processing: 1},
		},
		updated: models.Order{ID: "o-1", OrderStatus: models.StatusShipped},
	}
	notifier := &captureNotifier{}
	store := NewOrderStore(api, notifier)
	require.NoError(t, store.Fetch(context.Background(), ""))
	require.Equal(t, 1, api.listCalls)

	// The refetch after the update supersedes the eager local replace.
	api.result = models.OrdersResult{
		Orders:  []models.Order{{ID: "o-1", OrderStatus: models.StatusShipped}},
		Summary: models.OrderSummary{Total: 1, Shipped: 1},
	}

	require.NoError(t, store.UpdateStatus(context.Background(), "o-1", models.StatusShipped))

	assert.Equal(t, 1, api.updateCalls)
	assert.Equal(t, 2, api.listCalls, "status update triggers a full refetch")
	assert.Equal(t, 1, store.Summary().Shipped)
	assert.Equal(t, models.StatusShipped, store.Orders()[0].OrderStatus)
	assert.Equal(t, []string{"Order status updated to shipped!"}, notifier.successes)
}

func TestOrderStoreRejectsSameStatusWithoutNetworkCall(t *testing.T) {
	api := &fakeOrderAPI{result: models.OrdersResult{
		Orders: []models.Order{{ID: "o-1", OrderStatus: models.StatusProcessing}},
	}}
	store := NewOrderStore(api, &captureNotifier{})
	require.NoError(t, store.Fetch(context.Background(), ""))
	callsBefore := api.listCalls + api.updateCalls

	err := store.UpdateStatus(context.Background(), "o-1", models.StatusProcessing)

	assert.ErrorIs(t, err, ErrSameStatus)
	assert.Equal(t, callsBefore, api.listCalls+api.updateCalls, "no network call was issued")
}

func TestOrderStoreUpdateStatusFailure(t *testing.T) {
	api := &fakeOrderAPI{
		result:    models.OrdersResult{Orders: []models.Order{{ID: "o-1", OrderStatus: models.StatusProcessing}}},
		updateErr: errors.New("Failed to update order status"),
	}
	store := NewOrderStore(api, &captureNotifier{})
	require.NoError(t, store.Fetch(context.Background(), ""))

	err := store.UpdateStatus(context.Background(), "o-1", models.StatusShipped)
	require.Error(t, err)

	assert.Equal(t, models.StatusProcessing, store.Orders()[0].OrderStatus)
	assert.False(t, store.Loading())
}
