package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-openapi/runtime/middleware"

	"payment-tracker/internal/handlers"
	"payment-tracker/internal/middlewares"
)

func InitRoutes(authHandler *handlers.AuthHandler, itemHandler *handlers.ItemHandler,
	paymentHandler *handlers.PaymentHandler, authMiddleware *middlewares.AuthMiddleware) *gin.Engine {
	router := gin.Default()

	_ = router.SetTrustedProxies(nil)

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.StaticFile("/swagger.yaml", "./swagger.yaml")

	opts := middleware.SwaggerUIOpts{SpecURL: "/swagger.yaml"}
	sh := middleware.SwaggerUI(opts, nil)

	router.GET("/swagger/*any", func(c *gin.Context) {
		sh.ServeHTTP(c.Writer, c.Request)
	})

	api := router.Group("/api")

	// public routes
	api.POST("/auth", authHandler.Auth)
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// protected routes
	api.Use(authMiddleware.Handle())
	{
		api.POST("/items", itemHandler.CreateItem)
		api.GET("/items", itemHandler.ListItems)
		api.GET("/items/:id", itemHandler.GetItem)
		api.PUT("/items/:id", itemHandler.UpdateItem)
		api.DELETE("/items/:id", itemHandler.DeleteItem)

		api.POST("/checkout", paymentHandler.Checkout)
		api.GET("/transactions", paymentHandler.ListTransactions)
		api.GET("/transactions/:id", paymentHandler.GetTransaction)
		api.POST("/transactions/:id/status", paymentHandler.GatewayUpdate)
		api.DELETE("/transactions/:id", paymentHandler.DeleteTransaction)
		api.GET("/purchases", paymentHandler.ListPurchases)
		api.POST("/errors", paymentHandler.RecordError)
		api.GET("/errors", paymentHandler.ListErrors)
	}

	return router
}
