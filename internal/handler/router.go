// /internal/handler/router.go
package handler

import (
	"slices"
	"time"

	"github.com/ericoliveiras/creative-store/internal/config"
	"github.com/ericoliveiras/creative-store/internal/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every API route onto a fresh gin engine. The returned
// OrderFeed must be closed on shutdown since its connections are hijacked.
func NewRouter(cfg *config.Config, storage database.Storage) (*gin.Engine, *OrderFeed, error) {
	shipping, err := NewShippingPolicy(cfg.Store.FreeShippingThreshold, cfg.Store.ShippingFee)
	if err != nil {
		return nil, nil, err
	}

	latency := NewLatencyRecorder()
	feed := NewOrderFeed()
	sessions := &SessionResolver{Store: NewCookieStore(cfg.Session.Secret, cfg.Session.MaxAge)}

	catalog := &CatalogHandler{Storage: storage}
	cart := &CartHandler{Storage: storage, Shipping: shipping}
	orders := &OrderHandler{Storage: storage, Feed: feed, ClearCartOnOrder: cfg.Store.ClearCartOnOrder}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), latency.Middleware(), cors.New(corsConfig(cfg.Server.CORSOrigins)))

	router.GET("/health-check", HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/categories", catalog.ListCategories)
		api.POST("/categories", catalog.CreateCategory)
		api.GET("/categories/:slug", catalog.GetCategory)
		api.GET("/categories/:slug/products", catalog.ListCategoryProducts)

		api.GET("/products", catalog.ListProducts)
		api.GET("/products/export", catalog.ExportProducts)
		api.GET("/products/:id", catalog.GetProduct)
		api.POST("/products", catalog.CreateProduct)
		api.PUT("/products/:id/stock", catalog.UpdateStock)

		cartRoutes := api.Group("/cart", sessions.SessionRequired())
		cartRoutes.GET("", cart.ShowCart)
		cartRoutes.GET("/summary", cart.ShowSummary)
		cartRoutes.POST("", cart.AddToCart)
		cartRoutes.PUT("/:id", cart.UpdateCartItem)
		cartRoutes.DELETE("/:id", cart.RemoveFromCart)
		cartRoutes.DELETE("", cart.ClearCart)

		api.GET("/orders", orders.ListOrders)
		api.POST("/orders", sessions.SessionRequired(), orders.CreateOrder)
		api.GET("/orders/feed", feed.Subscribe)
		api.GET("/orders/:id", orders.GetOrder)

		api.GET("/metrics/latency", latency.Show)
	}

	return router, feed, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", SessionHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", SessionHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
