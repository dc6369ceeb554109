// Package mockbackend is an in-process stand-in for the storefront
// backend. It serves the same routes and response envelopes, keeps
// everything in memory, and exists for development mode and end-to-end
// tests.
package mockbackend

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/craftandcarry/admin-api/transforms"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Server struct {
	mu       sync.Mutex
	products []transforms.BackendProduct
	orders   []*transforms.BackendOrder
}

// New returns a stub backend preloaded with the seed catalog and a few
// orders in every status.
func New() *Server {
	return &Server{
		products: seedProducts(),
		orders:   seedOrders(),
	}
}

// Router builds the gin engine exposing the storefront backend contract.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/products/all", s.listProducts)
	router.POST("/products/", s.createProduct)
	router.PUT("/products/:id", s.updateProduct)
	router.DELETE("/products/:id", s.deleteProduct)
	router.GET("/orders/all", s.listOrders)
	router.PUT("/orders/:id/status", s.updateOrderStatus)

	return router
}

func ok(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func fail(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"success": false, "message": message})
}

func (s *Server) listProducts(ctx *gin.Context) {
	category := ctx.Query("category")

	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]transforms.BackendProduct, 0, len(s.products))
	for _, p := range s.products {
		if category == "" || p.CategoryName == category {
			products = append(products, p)
		}
	}
	ok(ctx, products)
}

func (s *Server) createProduct(ctx *gin.Context) {
	product, err := s.productFromForm(ctx, transforms.BackendProduct{ID: uuid.NewString()})
	if err != "" {
		fail(ctx, http.StatusBadRequest, err)
		return
	}
	if product.ItemImageURL == "" {
		fail(ctx, http.StatusBadRequest, "Product image is required")
		return
	}

	s.mu.Lock()
	s.products = append(s.products, product)
	s.mu.Unlock()
	ok(ctx, product)
}

func (s *Server) updateProduct(ctx *gin.Context) {
	id := ctx.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, existing := range s.products {
		if existing.ID != id {
			continue
		}
		product, errMsg := s.productFromForm(ctx, existing)
		if errMsg != "" {
			fail(ctx, http.StatusBadRequest, errMsg)
			return
		}
		s.products[idx] = product
		ok(ctx, product)
		return
	}
	fail(ctx, http.StatusNotFound, "Product not found")
}

func (s *Server) deleteProduct(ctx *gin.Context) {
	id := ctx.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, existing := range s.products {
		if existing.ID == id {
			s.products = append(s.products[:idx], s.products[idx+1:]...)
			ok(ctx, gin.H{"deleted": id})
			return
		}
	}
	fail(ctx, http.StatusNotFound, "Product not found")
}

// productFromForm applies the multipart form fields on top of base,
// keeping the existing image when no new file is attached.
func (s *Server) productFromForm(ctx *gin.Context, base transforms.BackendProduct) (transforms.BackendProduct, string) {
	base.CategoryName = ctx.DefaultPostForm("categoryName", base.CategoryName)
	base.ItemName = ctx.DefaultPostForm("itemName", base.ItemName)
	base.ItemDescription = ctx.DefaultPostForm("itemDescription", base.ItemDescription)
	base.Gender = ctx.DefaultPostForm("gender", base.Gender)

	if priceStr := ctx.PostForm("itemPrice"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			return base, "Invalid item price"
		}
		base.ItemPrice = &price
	}
	if discountStr := ctx.PostForm("discount"); discountStr != "" {
		discount, err := strconv.ParseFloat(discountStr, 64)
		if err != nil || discount < 0 || discount > 100 {
			return base, "Invalid discount"
		}
		base.Discount = &discount
	}
	if featuresStr := ctx.PostForm("itemFeatures"); featuresStr != "" {
		var features []string
		if err := json.Unmarshal([]byte(featuresStr), &features); err != nil {
			return base, "Invalid item features"
		}
		base.ItemFeatures = features
	}
	if file, err := ctx.FormFile("itemImageUrl"); err == nil {
		base.ItemImageURL = "/uploads/" + file.Filename
	}

	if base.ItemName == "" || base.CategoryName == "" {
		return base, "Item name and category are required"
	}
	return base, ""
}

func (s *Server) listOrders(ctx *gin.Context) {
	status := ctx.Query("status")

	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]*transforms.BackendOrder, 0, len(s.orders))
	for _, o := range s.orders {
		if status == "" || o.OrderStatus == status {
			orders = append(orders, o)
		}
	}

	summary := gin.H{
		"total":      len(s.orders),
		"processing": s.countByStatus("processing"),
		"shipped":    s.countByStatus("shipped"),
		"delivered":  s.countByStatus("delivered"),
		"cancelled":  s.countByStatus("cancelled"),
	}

	revenue := 0.0
	for _, o := range s.orders {
		if o.OrderStatus != "cancelled" && o.TotalAmount != nil {
			revenue += *o.TotalAmount
		}
	}

	ok(ctx, gin.H{
		"orders": orders,
		"pagination": gin.H{
			"total": len(orders),
			"page":  1,
			"limit": len(orders),
		},
		"summary":      summary,
		"totalRevenue": revenue,
	})
}

func (s *Server) countByStatus(status string) int {
	count := 0
	for _, o := range s.orders {
		if o.OrderStatus == status {
			count++
		}
	}
	return count
}

func (s *Server) updateOrderStatus(ctx *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == ctx.Param("id") {
			o.OrderStatus = body.Status
			o.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			ok(ctx, o)
			return
		}
	}
	fail(ctx, http.StatusNotFound, "Order not found")
}
