// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/goldenbarrel/storefront-backend/internal/config"
	"github.com/goldenbarrel/storefront-backend/internal/domain/cart"
	"github.com/goldenbarrel/storefront-backend/internal/domain/catalog"
	"github.com/goldenbarrel/storefront-backend/internal/domain/order"
	"github.com/goldenbarrel/storefront-backend/internal/interfaces/http/handlers"
	"github.com/goldenbarrel/storefront-backend/internal/pkg/email"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// SetupRoutes wires all API routes under the given router group
func SetupRoutes(rg *gin.RouterGroup, cat *catalog.Catalog, redisClient *redis.Client, cfg *config.Config, log *logrus.Logger) {
	cartStore := cart.NewStore(cart.NewRedisRepository(redisClient), log)
	emailService := email.NewService(cfg, log)
	orderService := order.NewService(cartStore, emailService, cfg, log)

	setupCatalogRoutes(rg, cat, cfg)
	setupCartRoutes(rg, cartStore, cat, cfg)
	setupOrderRoutes(rg, orderService, cfg)
}

// setupCatalogRoutes sets up product catalog routes
func setupCatalogRoutes(rg *gin.RouterGroup, cat *catalog.Catalog, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(cat, cfg)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/facets", catalogHandler.GetFacets)
		products.GET("/suggest", catalogHandler.Suggest)
		products.GET("/:id", catalogHandler.GetProduct)
	}
}

// setupCartRoutes sets up cart routes
func setupCartRoutes(rg *gin.RouterGroup, cartStore *cart.Store, cat *catalog.Catalog, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(cartStore, cat, cfg)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveCartItem)
	}
}

// setupOrderRoutes sets up order routes
func setupOrderRoutes(rg *gin.RouterGroup, orderService *order.Service, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(orderService, cfg)

	orders := rg.Group("/orders")
	{
		orders.POST("", orderHandler.CreateOrder)
	}
}
