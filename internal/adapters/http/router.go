package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nutricr/storefront/internal/adapters/config"
	"github.com/nutricr/storefront/internal/adapters/http/controllers"
	"github.com/nutricr/storefront/internal/adapters/http/middleware"
)

type Router struct {
	healthController    *controllers.HealthController
	productController   *controllers.ProductController
	cartController      *controllers.CartController
	inventoryController *controllers.InventoryController
	rateLimiter         middleware.RateLimiter
}

func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	cartController *controllers.CartController,
	inventoryController *controllers.InventoryController,
	rateLimiter middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		productController:   productController,
		cartController:      cartController,
		inventoryController: inventoryController,
		rateLimiter:         rateLimiter,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/products", r.productController.CreateProduct)
		v1Group.GET("/products", r.productController.GetAll)
		v1Group.GET("/products/:id", r.productController.GetByID)
		v1Group.PUT("/products/:id", r.productController.UpdateProduct)
		v1Group.PATCH("/products/:id/stock", middleware.RateLimit(rl, 20, 1*time.Minute), r.productController.UpdateStock)
		v1Group.DELETE("/products/:id", r.productController.DeleteProduct)

		v1Group.POST("/carts", middleware.RateLimit(rl, 15, 1*time.Minute), r.cartController.CreateCart)
		v1Group.GET("/carts/:id", r.cartController.GetCart)
		v1Group.POST("/carts/:id/items", middleware.RateLimit(rl, 30, 1*time.Minute), r.cartController.AddItem)
		v1Group.PATCH("/carts/:id/items/:productId", r.cartController.UpdateItem)
		v1Group.DELETE("/carts/:id/items/:productId", r.cartController.RemoveItem)
		v1Group.DELETE("/carts/:id/items", r.cartController.ClearCart)
		v1Group.PUT("/carts/:id/shipping", r.cartController.SetShippingMethod)
		v1Group.GET("/shipping-methods", r.cartController.GetShippingMethods)

		v1Group.GET("/inventory/metrics", r.inventoryController.Metrics)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
