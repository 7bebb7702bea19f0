package http

import (
	"github.com/gin-gonic/gin"

	"productcatalog/internal/http/controller"
	"productcatalog/internal/http/middleware"
)

func InitRouter(
	server *gin.Engine,
	baseCtr *controller.Controller,
	productCtr *controller.ProductController,
	categoryCtr *controller.CategoryController,
	supplierCtr *controller.SupplierController,
	reportCtr *controller.ReportController,
) *gin.Engine {
	// Apply recovery middleware globally to prevent panics from crashing the server
	server.Use(middleware.Recovery())
	server.Use(middleware.RequestID())

	server.GET("/ping", baseCtr.Ping)

	// Product endpoints
	products := server.Group("/products")
	{
		products.POST("", productCtr.CreateProduct)
		products.GET("", productCtr.ListProducts)
		products.GET("/:id", productCtr.GetProduct)
		products.PUT("/:id", productCtr.UpdateProduct)
		products.PATCH("/:id/stock", productCtr.UpdateStock)
		products.DELETE("/:id", productCtr.DeleteProduct)
		products.GET("/:id/history", reportCtr.ProductHistory)
	}

	// Category endpoints
	categories := server.Group("/categories")
	{
		categories.POST("", categoryCtr.CreateCategory)
		categories.GET("", categoryCtr.ListCategories)
		categories.DELETE("/:id", categoryCtr.DeleteCategory)
		categories.GET("/:id/products", reportCtr.ProductsByCategory)
	}

	// Supplier endpoints
	suppliers := server.Group("/suppliers")
	{
		suppliers.POST("", supplierCtr.CreateSupplier)
		suppliers.GET("", supplierCtr.ListSuppliers)
		suppliers.DELETE("/:id", supplierCtr.DeleteSupplier)
	}

	// Report endpoints
	reports := server.Group("/reports")
	{
		reports.GET("/products-with-details", reportCtr.ProductsWithDetails)
		reports.GET("/category-hierarchy", reportCtr.CategoryHierarchy)
		reports.GET("/recent-products", reportCtr.RecentProducts)
		reports.GET("/low-stock", reportCtr.LowStockProducts)
		reports.GET("/price-range", reportCtr.ProductsByPriceRange)
		reports.GET("/supplier-performance", reportCtr.SupplierPerformance)
		reports.GET("/category-statistics", reportCtr.CategoryStatistics)
		reports.GET("/stats", reportCtr.Stats)
	}

	return server
}
