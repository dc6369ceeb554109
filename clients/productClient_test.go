package clients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductClient(handler http.HandlerFunc) (*ProductClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewProductClient(New(server.URL)), server
}

func TestListProductsForwardsCategoryFilter(t *testing.T) {
	var gotCategory string
	client, server := newProductClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/all", r.URL.Path)
		gotCategory = r.URL.Query().Get("category")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"_id": "p-1", "itemName": "Tote", "categoryName": "Bags", "gender": "Women"},
			},
		})
	})
	defer server.Close()

	items, err := client.ListProducts(context.Background(), "Bags")
	require.NoError(t, err)
	assert.Equal(t, "Bags", gotCategory)
	require.Len(t, items, 1)
	assert.Equal(t, "p-1", items[0].ID)
	assert.Equal(t, "women", items[0].Gender)
}

func TestListProductsEnvelopeFailureCarriesServerMessage(t *testing.T) {
	client, server := newProductClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "DB down"})
	})
	defer server.Close()

	_, err := client.ListProducts(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, "DB down", err.Error())
}

func TestListProductsNon2xxRaisesAPIError(t *testing.T) {
	client, server := newProductClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer server.Close()

	_, err := client.ListProducts(context.Background(), "")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestCreateProductSendsMultipartForm(t *testing.T) {
	client, server := newProductClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(10<<20))

		assert.Equal(t, "Bags", r.FormValue("categoryName"))
		assert.Equal(t, "Test Bag", r.FormValue("itemName"))
		assert.Equal(t, "100", r.FormValue("itemPrice"))
		assert.Equal(t, "0", r.FormValue("discount"))
		assert.Equal(t, "Women", r.FormValue("gender"), "gender is capitalized on the wire")

		var features []string
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("itemFeatures")), &features))
		assert.Equal(t, []string{"Handcrafted"}, features)

		file, header, err := r.FormFile("itemImageUrl")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "bag.jpg", header.Filename)

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"_id": "new-1", "itemName": "Test Bag", "categoryName": "Bags",
				"itemFeatures": []string{"Handcrafted"}, "itemPrice": 100, "gender": "Women",
			},
		})
	})
	defer server.Close()

	item, err := client.CreateProduct(context.Background(), ProductForm{
		CategoryName: "Bags",
		ItemName:     "Test Bag",
		ItemPrice:    100,
		Description:  "A bag for testing",
		Features:     []string{"Handcrafted"},
		Gender:       "women",
		ImageName:    "bag.jpg",
		Image:        []byte("fake image bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new-1", item.ID)
	assert.Equal(t, 100.0, item.Price)
}

func TestUpdateProductOmitsImageWhenNoneChosen(t *testing.T) {
	client, server := newProductClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/products/p-9", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(10<<20))

		_, _, err := r.FormFile("itemImageUrl")
		assert.Error(t, err, "no image part when none was chosen")

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"_id": "p-9", "itemName": "Renamed"},
		})
	})
	defer server.Close()

	item, err := client.UpdateProduct(context.Background(), "p-9", ProductForm{
		CategoryName: "Belts",
		ItemName:     "Renamed",
		Features:     []string{"Full-grain"},
		Gender:       "unisex",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", item.Name)
}

func TestDeleteProduct(t *testing.T) {
	client, server := newProductClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/products/p-2", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	defer server.Close()

	assert.NoError(t, client.DeleteProduct(context.Background(), "p-2"))
}
