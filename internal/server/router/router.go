// Package router wires the gin engine with routes and middleware.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smerla/milkbook/internal/auth"
	"github.com/smerla/milkbook/internal/middleware"
	"github.com/smerla/milkbook/internal/server/handlers"
)

// Handlers groups the API handlers the router mounts.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Entries   *handlers.EntryHandler
	Customers *handlers.CustomerHandler
	Billing   *handlers.BillingHandler
	Reports   *handlers.ReportHandler
	Advances  *handlers.AdvanceHandler
	Catalog   *handlers.CatalogHandler
}

// New builds the engine. Everything under /api/v1 except the auth routes
// requires a valid bearer token.
func New(h Handlers, jwtManager *auth.JWTManager) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/signup", h.Auth.Signup)
		authRoutes.POST("/login", h.Auth.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(jwtManager))
	{
		entries := protected.Group("/entries")
		{
			entries.GET("", h.Entries.List)
			entries.POST("", h.Entries.Create)
			entries.PUT("/:id", h.Entries.Update)
			entries.POST("/:id/delete-request", h.Entries.RequestDeletion)
			entries.POST("/delete-confirm", h.Entries.ConfirmDeletion)
		}

		customers := protected.Group("/customers")
		{
			customers.GET("", h.Customers.List)
			customers.POST("", h.Customers.Create)
			customers.PUT("/:id", h.Customers.Update)
			customers.DELETE("/:id", h.Customers.Delete)
		}

		invoices := protected.Group("/invoices")
		{
			invoices.GET("", h.Billing.List)
			invoices.POST("", h.Billing.Create)
			invoices.GET("/:id", h.Billing.Get)
			invoices.PATCH("/:id/status", h.Billing.UpdateStatus)
			invoices.DELETE("/:id", h.Billing.Delete)
		}

		reports := protected.Group("/reports")
		{
			reports.GET("/daily", h.Reports.Daily)
			reports.GET("/monthly", h.Reports.Monthly)
			reports.GET("/periods", h.Reports.Periods)
		}

		advances := protected.Group("/advances")
		{
			advances.GET("/cash", h.Advances.ListCash)
			advances.POST("/cash", h.Advances.CreateCash)
			advances.DELETE("/cash/:id", h.Advances.DeleteCash)
			advances.GET("/supplements", h.Advances.ListSupplements)
			advances.POST("/supplements", h.Advances.CreateSupplement)
			advances.DELETE("/supplements/:id", h.Advances.DeleteSupplement)
		}

		rateCharts := protected.Group("/rate-charts")
		{
			rateCharts.GET("", h.Catalog.ListRateChart)
			rateCharts.POST("", h.Catalog.CreateRateChartRow)
			rateCharts.GET("/lookup", h.Catalog.LookupRate)
			rateCharts.PUT("/:id", h.Catalog.UpdateRateChartRow)
			rateCharts.DELETE("/:id", h.Catalog.DeleteRateChartRow)
		}

		feeds := protected.Group("/feeds")
		{
			feeds.GET("", h.Catalog.ListFeeds)
			feeds.POST("", h.Catalog.CreateFeed)
			feeds.PUT("/:id", h.Catalog.UpdateFeed)
			feeds.DELETE("/:id", h.Catalog.DeleteFeed)
		}
	}

	return r
}
