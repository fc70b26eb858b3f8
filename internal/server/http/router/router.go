package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/shopcore/adminapi/internal/config"
	"github.com/shopcore/adminapi/internal/server/http/handlers"
	"github.com/shopcore/adminapi/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PlatformFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handlers.NewAuthHandler(facade, cfg, logger)
	loyaltyHandler := handlers.NewLoyaltyHandler(facade, logger)
	catalogHandler := handlers.NewCatalogHandler(facade, logger)
	contentHandler := handlers.NewContentHandler(facade, logger)
	favoriteHandler := handlers.NewFavoriteHandler(facade, logger)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// Storefront reads need no credentials and only expose active entries.
	catalog := api.Group("/catalog")
	catalog.GET("/products", catalogHandler.ListProducts(true))
	catalog.GET("/products/:id", catalogHandler.GetProduct)
	catalog.GET("/categories", catalogHandler.ListCategories)
	catalog.GET("/categories/:id", catalogHandler.GetCategory)
	catalog.GET("/shipping-zones", catalogHandler.ListShippingZones)
	catalog.GET("/shipping-zones/:id", catalogHandler.GetShippingZone)

	content := api.Group("/content")
	content.GET("/banners", contentHandler.ListBanners(true))
	content.GET("/banners/:id", contentHandler.GetBanner)
	content.GET("/popups", contentHandler.ListPopups(true))
	content.GET("/popups/:id", contentHandler.GetPopup)
	content.GET("/playlists", contentHandler.ListPlaylists)
	content.GET("/playlists/:id", contentHandler.GetPlaylist)
	content.GET("/videos", contentHandler.ListVideos)
	content.GET("/videos/:id", contentHandler.GetVideo)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/auth/me", authHandler.Me)
	authed.GET("/favorites", favoriteHandler.List)
	authed.POST("/favorites", favoriteHandler.Add)
	authed.DELETE("/favorites/:productID", favoriteHandler.Remove)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	admin.GET("/users", authHandler.ListUsers)

	admin.POST("/products", catalogHandler.CreateProduct)
	admin.GET("/products", catalogHandler.ListProducts(false))
	admin.PUT("/products/:id", catalogHandler.UpdateProduct)
	admin.DELETE("/products/:id", catalogHandler.DeleteProduct)

	admin.POST("/categories", catalogHandler.CreateCategory)
	admin.PUT("/categories/:id", catalogHandler.UpdateCategory)
	admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)

	admin.POST("/shipping-zones", catalogHandler.CreateShippingZone)
	admin.PUT("/shipping-zones/:id", catalogHandler.UpdateShippingZone)
	admin.DELETE("/shipping-zones/:id", catalogHandler.DeleteShippingZone)

	admin.POST("/banners", contentHandler.CreateBanner)
	admin.GET("/banners", contentHandler.ListBanners(false))
	admin.PUT("/banners/:id", contentHandler.UpdateBanner)
	admin.DELETE("/banners/:id", contentHandler.DeleteBanner)

	admin.POST("/popups", contentHandler.CreatePopup)
	admin.GET("/popups", contentHandler.ListPopups(false))
	admin.PUT("/popups/:id", contentHandler.UpdatePopup)
	admin.DELETE("/popups/:id", contentHandler.DeletePopup)

	admin.POST("/playlists", contentHandler.CreatePlaylist)
	admin.PUT("/playlists/:id", contentHandler.UpdatePlaylist)
	admin.DELETE("/playlists/:id", contentHandler.DeletePlaylist)

	admin.POST("/videos", contentHandler.CreateVideo)
	admin.PUT("/videos/:id", contentHandler.UpdateVideo)
	admin.DELETE("/videos/:id", contentHandler.DeleteVideo)

	admin.POST("/bonuses", loyaltyHandler.CreateBonus)
	admin.GET("/bonuses", loyaltyHandler.ListBonuses)
	admin.GET("/bonuses/:id", loyaltyHandler.GetBonus)
	admin.PUT("/bonuses/:id", loyaltyHandler.UpdateBonus)
	admin.DELETE("/bonuses/:id", loyaltyHandler.DeleteBonus)

	loyalty := api.Group("/loyalty")
	loyalty.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	loyalty.POST("/transactions", loyaltyHandler.RecordTransaction)
	loyalty.GET("/users", loyaltyHandler.UsersByRange)
	loyalty.GET("/users/:id/transactions", loyaltyHandler.UserTransactions)
	loyalty.GET("/users/:id/balance", loyaltyHandler.UserBalance)
	loyalty.GET("/users/:id/reconcile", loyaltyHandler.UserReconcile)
	loyalty.GET("/bonuses/:id/redeemers", loyaltyHandler.BonusRedeemers)

	return engine
}
