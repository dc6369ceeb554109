package main

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/craftandcarry/admin-api/clients"
	"github.com/craftandcarry/admin-api/controllers"
	"github.com/craftandcarry/admin-api/initializers"
	"github.com/craftandcarry/admin-api/middlewares"
	"github.com/craftandcarry/admin-api/mockbackend"
	"github.com/craftandcarry/admin-api/routes"
	"github.com/craftandcarry/admin-api/stores"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
}

func main() {
	config := initializers.LoadConfig()

	// Dev mode: run the in-memory stub backend in-process and point the
	// clients at it instead of the real storefront backend.
	if config.MockBackend {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			log.Fatal("Failed to start mock backend:", err)
		}
		go http.Serve(listener, mockbackend.New().Router())
		config.APIBaseURL = "http://" + listener.Addr().String()
		log.Println("Mock backend running at", config.APIBaseURL)
	}

	api := clients.New(config.APIBaseURL)
	productStore := stores.NewProductStore(clients.NewProductClient(api), nil)
	orderStore := stores.NewOrderStore(clients.NewOrderClient(api), nil)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	guards := []gin.HandlerFunc{
		middlewares.RequireAuth(config.JWTSecret),
		middlewares.RequireAdmin(),
	}

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, controllers.NewAuthController(config))
	routes.ProductRoutes(server, controllers.NewProductController(productStore), guards...)
	routes.OrderRoutes(server, controllers.NewOrderController(orderStore), guards...)

	server.Run(":" + config.Port)
}
