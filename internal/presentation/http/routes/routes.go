package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hostalia/roomservice-api/internal/config"
	domainRepo "github.com/hostalia/roomservice-api/internal/domain/repository"
	"github.com/hostalia/roomservice-api/internal/presentation/http/handler"
	"github.com/hostalia/roomservice-api/internal/presentation/http/middleware"
	"github.com/hostalia/roomservice-api/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Hotel    *handler.HotelHandler
	Menu     *handler.MenuHandler
	Supplier *handler.SupplierHandler
	Order    *handler.OrderHandler
	Closure  *handler.ClosureHandler
	Stats    *handler.StatsHandler
	WS       *handler.WSHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	HotelRepo  domainRepo.HotelRepository
	Logger     *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		protected.GET("/auth/me", h.Auth.Me)
		protected.POST("/users", middleware.RequireSuperAdmin(), h.Auth.CreateUser)

		protected.GET("/hotels", h.Hotel.List)
		protected.POST("/hotels", middleware.RequireSuperAdmin(), h.Hotel.Create)
		protected.GET("/hotels/by-slug/:slug", h.Hotel.GetBySlug)

		// Hotel-scoped routes: the middleware resolves the hotel, checks
		// membership and scopes every downstream repository call
		hotel := protected.Group("/hotels/:hotelId")
		hotel.Use(middleware.HotelMiddleware(deps.HotelRepo))

		rateLimiter := middleware.NewHotelRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		hotel.Use(rateLimiter.Middleware())

		{
			hotel.GET("", h.Hotel.Get)
			hotel.PUT("", h.Hotel.Update)
			hotel.POST("/members", middleware.RequireSuperAdmin(), h.Hotel.AddMember)

			menu := hotel.Group("/menu")
			{
				menu.GET("", h.Menu.List)
				menu.POST("", h.Menu.Create)
				menu.GET("/:id", h.Menu.Get)
				menu.PUT("/:id", h.Menu.Update)
				menu.DELETE("/:id", h.Menu.Delete)
			}

			suppliers := hotel.Group("/suppliers")
			{
				suppliers.GET("", h.Supplier.List)
				suppliers.POST("", h.Supplier.Create)
				suppliers.GET("/:id", h.Supplier.Get)
				suppliers.PUT("/:id", h.Supplier.Update)
				suppliers.DELETE("/:id", h.Supplier.Delete)
			}

			orders := hotel.Group("/orders")
			{
				orders.GET("", h.Order.List)
				orders.POST("", h.Order.Create)
				orders.GET("/:id", h.Order.Get)
				orders.PATCH("/:id/status", h.Order.UpdateStatus)
				orders.DELETE("/:id", h.Order.Delete)
				orders.POST("/:id/print", h.Order.Print)
			}

			closures := hotel.Group("/closures")
			{
				closures.POST("", h.Closure.Run)
				closures.GET("", h.Closure.List)
				closures.GET("/:id", h.Closure.Get)
				closures.POST("/:id/reprint", h.Closure.Reprint)
				closures.GET("/:id/extract", h.Closure.Extract)
			}

			hotel.GET("/archive", h.Closure.ListArchived)

			stats := hotel.Group("/stats")
			{
				stats.GET("/today", h.Stats.Today)
				stats.POST("/today/report", h.Stats.Report)
			}

			hotel.GET("/ws", h.WS.Serve)
		}
	}

	return router
}
