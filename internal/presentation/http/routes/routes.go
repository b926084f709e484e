package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajshree/shopbill-api/internal/config"
	domainRepo "github.com/rajshree/shopbill-api/internal/domain/repository"
	"github.com/rajshree/shopbill-api/internal/presentation/http/handler"
	"github.com/rajshree/shopbill-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Product *handler.ProductHandler
	Billing *handler.BillingHandler
	Printer *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	registerProductRoutes(router, h)
	registerBillingRoutes(router, h, deps)
	registerPrintRoutes(router, h)

	return router
}

func registerProductRoutes(router *gin.Engine, h *Handlers) {
	products := router.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/search", h.Product.Search)
		products.GET("/scan/:code", h.Product.GetByScanCode)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerBillingRoutes(router *gin.Engine, h *Handlers, deps *Deps) {
	bills := router.Group("/bills")
	{
		bills.GET("", h.Billing.List)
		// Bill creation uses idempotency middleware to prevent duplicates
		// from a double-tapped checkout button
		bills.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Billing.Create)
		bills.GET("/summary/sales", h.Billing.SalesSummary)
		bills.GET("/:id", h.Billing.Get)
		bills.GET("/:id/pdf", h.Billing.PDF)
	}
}

func registerPrintRoutes(router *gin.Engine, h *Handlers) {
	print := router.Group("/print")
	{
		print.GET("/status", h.Printer.GetStatus)
		print.POST("/label", h.Printer.PrintLabel)
		print.POST("/receipt", h.Printer.PrintReceipt)
	}
}
