package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"github.com/craftandcarry/admin-api/models"
	"github.com/craftandcarry/admin-api/transforms"
	"github.com/go-resty/resty/v2"
)

// ProductForm carries the create/edit form fields. Image is the raw
// file content; it is optional on update.
type ProductForm struct {
	CategoryName string
	ItemName     string
	ItemPrice    float64
	Description  string
	Features     []string
	Discount     float64
	Gender       string
	ImageName    string
	Image        []byte
}

type ProductClient struct {
	api *Client
}

func NewProductClient(api *Client) *ProductClient {
	return &ProductClient{api: api}
}

// ListProducts fetches the catalog, optionally narrowed to one category.
func (c *ProductClient) ListProducts(ctx context.Context, category string) ([]models.Item, error) {
	req := c.api.http.R().SetContext(ctx)
	if category != "" {
		req.SetQueryParam("category", category)
	}

	resp, err := req.Get("/products/all")
	if err != nil {
		log.Println("Error fetching products:", err)
		return nil, err
	}

	var raws []transforms.BackendProduct
	if err := decodeEnvelope(resp, "Failed to fetch products", &raws); err != nil {
		log.Println("Error fetching products:", err)
		return nil, err
	}
	return transforms.ToItems(raws), nil
}

// CreateProduct posts the multipart form. No Content-Type is set
// explicitly so the transport writes the boundary itself.
func (c *ProductClient) CreateProduct(ctx context.Context, form ProductForm) (models.Item, error) {
	req, err := c.multipartRequest(ctx, form)
	if err != nil {
		log.Println("Error creating product:", err)
		return models.Item{}, err
	}

	resp, err := req.Post("/products/")
	if err != nil {
		log.Println("Error creating product:", err)
		return models.Item{}, err
	}

	var raw transforms.BackendProduct
	if err := decodeEnvelope(resp, "Failed to create product", &raw); err != nil {
		log.Println("Error creating product:", err)
		return models.Item{}, err
	}
	return transforms.ToItem(raw), nil
}

// UpdateProduct sends the same multipart form as create; the image part
// is included only when a replacement file was chosen.
func (c *ProductClient) UpdateProduct(ctx context.Context, productID string, form ProductForm) (models.Item, error) {
	req, err := c.multipartRequest(ctx, form)
	if err != nil {
		log.Println("Error updating product:", err)
		return models.Item{}, err
	}

	resp, err := req.Put("/products/" + productID)
	if err != nil {
		log.Println("Error updating product:", err)
		return models.Item{}, err
	}

	var raw transforms.BackendProduct
	if err := decodeEnvelope(resp, "Failed to update product", &raw); err != nil {
		log.Println("Error updating product:", err)
		return models.Item{}, err
	}
	return transforms.ToItem(raw), nil
}

func (c *ProductClient) DeleteProduct(ctx context.Context, productID string) error {
	resp, err := c.api.http.R().SetContext(ctx).Delete("/products/" + productID)
	if err != nil {
		log.Println("Error deleting product:", err)
		return err
	}
	if err := decodeEnvelope(resp, "Failed to delete product", nil); err != nil {
		log.Println("Error deleting product:", err)
		return err
	}
	return nil
}

func (c *ProductClient) multipartRequest(ctx context.Context, form ProductForm) (*resty.Request, error) {
	features, err := json.Marshal(form.Features)
	if err != nil {
		return nil, err
	}

	req := c.api.http.R().SetContext(ctx).SetMultipartFormData(map[string]string{
		"categoryName":    form.CategoryName,
		"itemName":        form.ItemName,
		"itemPrice":       strconv.FormatFloat(form.ItemPrice, 'f', -1, 64),
		"itemDescription": form.Description,
		"itemFeatures":    string(features),
		"discount":        strconv.FormatFloat(form.Discount, 'f', -1, 64),
		"gender":          capitalize(form.Gender),
	})
	if len(form.Image) > 0 {
		req.SetMultipartField("itemImageUrl", form.ImageName, "", bytes.NewReader(form.Image))
	}
	return req, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
