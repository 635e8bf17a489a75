package http

import (
	"path/filepath"

	"github.com/michaeliyer/canCockOne/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Router wires the full HTTP surface: JSON API plus the static browser
// frontend served from staticDir. Pass staticDir="" to skip the frontend
// (tests do).
func Router(catalog service.CatalogService, orders service.OrderService, reports service.ReportService, staticDir string, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	customerHandler := NewCustomerHandler(catalog, log)
	productHandler := NewProductHandler(catalog, log)
	variantHandler := NewVariantHandler(catalog, log)
	orderHandler := NewOrderHandler(orders, log)
	reportHandler := NewReportHandler(reports, log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/customers", customerHandler.List)
	r.POST("/customers", customerHandler.Create)

	r.GET("/products", productHandler.List)
	r.POST("/products", productHandler.Create)
	r.PUT("/products/:id", productHandler.Update)
	r.DELETE("/products/:id", productHandler.Delete)
	r.GET("/products/:id/variants", variantHandler.ListByProduct)

	r.POST("/variants", variantHandler.Create)
	r.GET("/variants/product/:id", variantHandler.ListByProduct)
	r.PUT("/variants/:id", variantHandler.Update)
	r.DELETE("/variants/:id", variantHandler.Delete)
	r.PUT("/variants/:id/addstock", variantHandler.AddStock)

	r.POST("/orders", orderHandler.Create)
	r.GET("/orders", orderHandler.List)

	r.GET("/reports/sales-report", reportHandler.Sales)
	r.GET("/reports/daily-report", reportHandler.Daily)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.GET("/", func(c *gin.Context) {
			c.File(filepath.Join(staticDir, "index.html"))
		})
	}

	return r
}
