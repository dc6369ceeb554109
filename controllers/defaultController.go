package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Craft & Carry admin API.

The following are the endpoints for this API:

AUTH
- POST "/auth/login" - Sign in as the admin

ITEMS
- GET "/dashboard/items" - List items (optional category and page)
- POST "/dashboard/items" - Create an item (multipart form)
- PUT "/dashboard/items/:id" - Edit an item (multipart form)
- DELETE "/dashboard/items/:id" - Delete an item (requires confirmation)

ORDERS
- GET "/dashboard/orders" - List orders grouped by status with summary
- PUT "/dashboard/orders/:orderId/status" - Change an order's status`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
