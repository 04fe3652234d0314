package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"surfshop-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(h.cfg.Server.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = h.cfg.Server.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// Uploaded images are served directly.
	r.Static("/uploads", h.cfg.Server.UploadDir)

	db := h.store.DB()

	rateLimiter := mw.RateLimiter(rate.Limit(h.cfg.Server.RateLimitPerSec), h.cfg.Server.RateLimitBurst)

	cacheTTL := time.Duration(h.cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	authRequired := mw.Auth(h.cfg.Auth.JWTSecret)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/auth/login", h.Login)
		api.POST("/auth/setup", h.SetupAdmin)

		api.GET("/surfboards", GetSurfboards(db))

		api.POST("/rentals/start", h.StartRental)
		api.GET("/rentals/active", h.GetActiveRentals)
		api.GET("/rentals/check-alerts", h.CheckRentalAlerts)
		api.GET("/rentals/history", h.GetRentalHistory)
		api.GET("/rentals/:id", h.GetRental)
		api.PUT("/rentals/:id", h.UpdateRental)

		api.GET("/products", GetProducts(db))
		api.GET("/gallery", h.GetGallery)
		api.GET("/settings", h.GetSettings)

		api.POST("/push/subscribe", h.SubscribePush)
		api.GET("/push/subscriptions", h.GetPushSubscriptions)
		api.GET("/vapid_public_key", h.GetVAPIDPublicKey)

		api.POST("/payments/checkout", h.CreateCheckout)
		api.GET("/payments/status/:session_id", h.GetPaymentStatus)
		api.POST("/webhook/stripe", h.StripeWebhook)

		// Read-through proxies sit behind the response cache so slow or
		// rate-limited upstreams are hit at most once per TTL.
		api.GET("/weather", caching, h.GetWeather)
		api.GET("/waves", caching, h.GetWaves)
		api.GET("/tides", caching, h.GetTides)
		api.GET("/news", caching, h.GetNews)

		// Staff-only management endpoints.
		admin := api.Group("")
		admin.Use(authRequired)
		{
			admin.POST("/surfboards", CreateSurfboard(db))
			admin.PUT("/surfboards/:id", UpdateSurfboard(db))
			admin.DELETE("/surfboards/:id", DeleteSurfboard(db))

			admin.POST("/products", CreateProduct(db))
			admin.PUT("/products/:id", UpdateProduct(db))
			admin.DELETE("/products/:id", DeleteProduct(db))

			admin.POST("/gallery", h.CreateGalleryImage)
			admin.PUT("/gallery/:id", h.UpdateGalleryImage)
			admin.DELETE("/gallery/:id", h.DeleteGalleryImage)

			admin.PUT("/settings", h.UpdateSettings)

			admin.POST("/upload", h.UploadFile)
		}
	}

	return r
}
