package routes

import (
	"github.com/craftandcarry/admin-api/controllers"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine, controller *controllers.ProductController, guards ...gin.HandlerFunc) {
	items := server.Group("/dashboard/items", guards...)
	{
		items.GET("", controller.GetItems)
		items.POST("", controller.CreateItem)
		items.PUT("/:id", controller.UpdateItem)
		items.DELETE("/:id", controller.DeleteItem)
	}
}
