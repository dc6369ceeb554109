package routes

import (
	"github.com/craftandcarry/admin-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, controller *controllers.OrderController, guards ...gin.HandlerFunc) {
	orders := server.Group("/dashboard/orders", guards...)
	{
		orders.GET("", controller.GetOrders)
		orders.PUT("/:orderId/status", controller.UpdateOrderStatus)
	}
}
