// Package routes wires the controllers onto the gin router. Every
// dependency comes in through Deps; nothing here reaches for globals.
package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/hithesh05/chroma-shop-essence/cache"
	admin_controller "github.com/hithesh05/chroma-shop-essence/controllers/admin"
	auth_controller "github.com/hithesh05/chroma-shop-essence/controllers/auth"
	cart_controller "github.com/hithesh05/chroma-shop-essence/controllers/cart"
	storefront_controller "github.com/hithesh05/chroma-shop-essence/controllers/storefront"
	ui_controller "github.com/hithesh05/chroma-shop-essence/controllers/ui"
	wishlist_controller "github.com/hithesh05/chroma-shop-essence/controllers/wishlist"
	"github.com/hithesh05/chroma-shop-essence/middleware"
	"github.com/hithesh05/chroma-shop-essence/services"
	"github.com/hithesh05/chroma-shop-essence/store"
)

type Deps struct {
	Store *store.Store
	JWT   *services.JWTService
	Cache *cache.CatalogCache
	// Redis is optional; without it the admin rate limiter is a
	// pass-through.
	Redis *redis.Client
}

// Register mounts all route groups under /api/v1.
func Register(router *gin.Engine, deps Deps) {
	api := router.Group("/api/v1")

	registerStorefrontRoutes(api, deps)
	registerCartRoutes(api, deps)
	registerAuthRoutes(api, deps)
	registerAdminRoutes(api, deps)
}

func registerStorefrontRoutes(api *gin.RouterGroup, deps Deps) {
	ctl := storefront_controller.NewController(deps.Store, deps.Cache)

	// Storefront routes (public, no auth required)
	products := api.Group("/store/products")
	{
		products.GET("", ctl.GetProducts)
		products.GET("/featured", ctl.GetFeaturedProducts)
		products.GET("/filters", ctl.GetFilterMetadata)
		products.GET("/:id", ctl.GetProductByID)
	}
}

func registerCartRoutes(api *gin.RouterGroup, deps Deps) {
	cartCtl := cart_controller.NewController(deps.Store)
	wishlistCtl := wishlist_controller.NewController(deps.Store)
	uiCtl := ui_controller.NewController(deps.Store)

	cart := api.Group("/cart")
	{
		cart.GET("", cartCtl.GetCart)
		cart.POST("", cartCtl.AddToCart)
		cart.PATCH("/:id", cartCtl.UpdateCartItem)
		cart.DELETE("/:id", cartCtl.RemoveFromCart)
		cart.DELETE("", cartCtl.ClearCart)
	}

	wishlist := api.Group("/wishlist")
	{
		wishlist.GET("", wishlistCtl.GetWishlist)
		wishlist.POST("/toggle", wishlistCtl.ToggleWishlist)
	}

	ui := api.Group("/ui")
	{
		ui.GET("", uiCtl.GetState)
		ui.POST("/cart/toggle", uiCtl.ToggleCart)
		ui.POST("/menu/toggle", uiCtl.ToggleMenu)
	}
}

func registerAuthRoutes(api *gin.RouterGroup, deps Deps) {
	ctl := auth_controller.NewController(deps.Store, deps.JWT)

	auth := api.Group("/auth")
	{
		auth.POST("/login", ctl.Login)
		auth.POST("/register", ctl.Register)
		auth.POST("/logout", ctl.Logout)
		auth.GET("/me", middleware.AuthMiddleware(deps.JWT), ctl.GetMe)
	}
}

func registerAdminRoutes(api *gin.RouterGroup, deps Deps) {
	ctl := admin_controller.NewController(deps.Store)

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(deps.Redis, 100, time.Minute))
	adminGroup.Use(middleware.AuthMiddleware(deps.JWT), middleware.AdminOnly())
	{
		adminGroup.GET("/stats", ctl.GetStats)
	}
}
