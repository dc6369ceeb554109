package routes

import (
	"github.com/craftandcarry/admin-api/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine, controller *controllers.AuthController) {
	auth := server.Group("/auth")
	{
		auth.POST("/login", controller.Login)
	}
}
