package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/craftandcarry/admin-api/models"
	"github.com/craftandcarry/admin-api/stores"
	"github.com/craftandcarry/admin-api/views"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Store *stores.OrderStore

	mu      sync.Mutex
	cursors views.StatusCursors
}

func NewOrderController(store *stores.OrderStore) *OrderController {
	return &OrderController{
		Store:   store,
		cursors: views.NewStatusCursors(),
	}
}

// GetOrders refreshes the order list and returns it grouped by status,
// each group paginated by its own cursor. A status query narrows both
// the backend fetch and the response to that one tab; a page query
// moves that tab's cursor without touching the others.
func (o *OrderController) GetOrders(ctx *gin.Context) {
	status := ctx.Query("status")
	if status != "" && !models.IsValidOrderStatus(status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status: "+status)
		return
	}

	if err := o.Store.Fetch(ctx.Request.Context(), status); err != nil {
		sendErrorResponse(ctx, http.StatusBadGateway, o.Store.Err())
		return
	}

	o.mu.Lock()
	if pageStr := ctx.Query("page"); pageStr != "" && status != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			o.cursors.Set(status, page)
		}
	}

	orders := o.Store.Orders()
	statuses := models.OrderStatuses
	if status != "" {
		statuses = []string{status}
	}

	groups := gin.H{}
	for _, s := range statuses {
		filtered := views.FilterOrdersByStatus(orders, s)
		totalPages := views.TotalPages(len(filtered), views.OrdersPerPage)
		page := o.cursors.Clamp(s, totalPages)
		groups[s] = gin.H{
			"orders":      views.Paginate(filtered, page, views.OrdersPerPage),
			"count":       len(filtered),
			"currentPage": page,
			"totalPages":  totalPages,
		}
	}
	o.mu.Unlock()

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"groups":       groups,
		"summary":      o.Store.Summary(),
		"totalRevenue": o.Store.TotalRevenue(),
	})
}

// UpdateOrderStatus transitions one order to a new status.
func (o *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}
	if !models.IsValidOrderStatus(body.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status: "+body.Status)
		return
	}

	err := o.Store.UpdateStatus(ctx.Request.Context(), ctx.Param("orderId"), body.Status)
	if errors.Is(err, stores.ErrSameStatus) {
		sendErrorResponse(ctx, http.StatusConflict, "Order is already in that status.")
		return
	}
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadGateway, o.Store.Err())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
	})
}
