package router

import (
	"fmt"
	"strings"

	"github.com/mebel-next/internal/cache"
	"github.com/mebel-next/internal/config"
	publichandlers "github.com/mebel-next/internal/http/handlers/public"
	"github.com/mebel-next/internal/logger"
	"github.com/mebel-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the storefront HTTP routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "mb"
	}
	redisClient := cache.Client()
	promoRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:promo", redisPrefix),
		WindowSeconds: cfg.Security.PromoRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.PromoRateLimit.MaxRequests,
	}
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxRequests,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Static files (product images)
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	apiV1.Use(SessionMiddleware(c.SessionService))
	{
		apiV1.GET("/config", publicHandler.GetConfig)
		apiV1.GET("/session", publicHandler.GetSession)

		// Catalog
		apiV1.GET("/products", publicHandler.ListProducts)
		apiV1.GET("/products/count", publicHandler.CountProducts)
		apiV1.GET("/products/price-range", publicHandler.GetPriceRange)
		apiV1.GET("/products/:slug", publicHandler.GetProduct)

		// Cart
		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.DELETE("", publicHandler.ClearCart)
			cart.POST("/items", publicHandler.AddCartItem)
			cart.PUT("/items", publicHandler.UpdateCartItem)
			cart.DELETE("/items/:product_id", publicHandler.DeleteCartItem)
			cart.POST("/promo", RateLimitMiddleware(redisClient, promoRule, KeyBySession), publicHandler.ApplyPromo)
			cart.DELETE("/promo", publicHandler.RemovePromo)
			cart.PUT("/delivery", publicHandler.SelectDelivery)
		}

		// Checkout
		apiV1.POST("/checkout/validate", publicHandler.ValidateOrderForm)
		apiV1.POST("/checkout", RateLimitMiddleware(redisClient, checkoutRule, KeyBySession), publicHandler.SubmitOrder)

		// Favorites
		favorites := apiV1.Group("/favorites")
		{
			favorites.GET("", publicHandler.ListFavorites)
			favorites.GET("/count", publicHandler.CountFavorites)
			favorites.DELETE("", publicHandler.ClearFavorites)
			favorites.POST("/:product_id", publicHandler.AddFavorite)
			favorites.POST("/:product_id/toggle", publicHandler.ToggleFavorite)
			favorites.DELETE("/:product_id", publicHandler.RemoveFavorite)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
