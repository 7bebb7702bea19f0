package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"productcatalog/internal/model"
	"productcatalog/internal/service"
)

// ReportController handles HTTP requests for the read-only report queries.
type ReportController struct {
	reportService *service.ReportService
}

// NewReportController creates a new ReportController.
func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// ProductsWithDetails returns products with category and supplier attached.
func (rc *ReportController) ProductsWithDetails(c *gin.Context) {
	products, err := rc.reportService.ProductsWithDetails(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	type detailsResponse struct {
		ProductResponse
		Category *CategoryResponse `json:"category,omitempty"`
		Supplier *SupplierResponse `json:"supplier,omitempty"`
	}

	responses := make([]detailsResponse, 0, len(products))
	for _, p := range products {
		resp := detailsResponse{ProductResponse: toProductResponse(p)}
		if p.Category != nil {
			cr := toCategoryResponse(p.Category)
			resp.Category = &cr
		}
		if p.Supplier != nil {
			sr := toSupplierResponse(p.Supplier)
			resp.Supplier = &sr
		}
		responses = append(responses, resp)
	}
	c.JSON(http.StatusOK, gin.H{"products": responses})
}

// CategoryHierarchy returns the root categories with children attached.
func (rc *ReportController) CategoryHierarchy(c *gin.Context) {
	roots, err := rc.reportService.CategoryHierarchy(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]CategoryResponse, 0, len(roots))
	for _, root := range roots {
		responses = append(responses, toCategoryResponse(root))
	}
	c.JSON(http.StatusOK, gin.H{"categories": responses})
}

// ProductsByCategory returns the products of one category.
func (rc *ReportController) ProductsByCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	products, err := rc.reportService.ProductsByCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(products)})
}

// RecentProductsRequest represents the query parameters for recent products.
type RecentProductsRequest struct {
	Count int `form:"count"`
}

// RecentProducts returns the most recently created products.
func (rc *ReportController) RecentProducts(c *gin.Context) {
	var req RecentProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := rc.reportService.RecentProducts(c.Request.Context(), req.Count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(products)})
}

// HistoryEntryResponse represents one audit row of a product.
type HistoryEntryResponse struct {
	ID         int64            `json:"id"`
	ProductID  int64            `json:"product_id"`
	Action     string           `json:"action"`
	OldPrice   *decimal.Decimal `json:"old_price,omitempty"`
	NewPrice   *decimal.Decimal `json:"new_price,omitempty"`
	OldStock   *int             `json:"old_stock,omitempty"`
	NewStock   *int             `json:"new_stock,omitempty"`
	ActionDate string           `json:"action_date"`
	ModifiedBy string           `json:"modified_by,omitempty"`
}

// ProductHistory returns the audit trail of one product, newest first.
func (rc *ReportController) ProductHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	entries, err := rc.reportService.HistoryForProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]HistoryEntryResponse, 0, len(entries))
	for _, h := range entries {
		responses = append(responses, HistoryEntryResponse{
			ID:         h.ID,
			ProductID:  h.ProductID,
			Action:     h.Action,
			OldPrice:   h.OldPrice,
			NewPrice:   h.NewPrice,
			OldStock:   h.OldStock,
			NewStock:   h.NewStock,
			ActionDate: h.ActionDate.Format(time.RFC3339),
			ModifiedBy: h.ModifiedBy,
		})
	}
	c.JSON(http.StatusOK, gin.H{"history": responses})
}

// LowStockRequest represents the query parameters for the low-stock report.
type LowStockRequest struct {
	Threshold *int `form:"threshold"`
}

// LowStockProducts returns products at or below the stock threshold.
func (rc *ReportController) LowStockProducts(c *gin.Context) {
	var req LowStockRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	threshold := service.DefaultLowStockThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	products, err := rc.reportService.LowStockProducts(c.Request.Context(), threshold)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(products)})
}

// ProductsByPriceRange returns products priced within the range.
func (rc *ReportController) ProductsByPriceRange(c *gin.Context) {
	minPrice, err := decimal.NewFromString(c.DefaultQuery("min", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min price"})
		return
	}
	maxPrice, err := decimal.NewFromString(c.DefaultQuery("max", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max price"})
		return
	}

	products, err := rc.reportService.ProductsByPriceRange(c.Request.Context(), minPrice, maxPrice)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(products)})
}

// SupplierPerformance returns suppliers ordered by descending product count.
func (rc *ReportController) SupplierPerformance(c *gin.Context) {
	suppliers, err := rc.reportService.SupplierPerformance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		responses = append(responses, toSupplierResponse(s))
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": responses})
}

// CategoryStatistics returns categories ordered by descending product count.
func (rc *ReportController) CategoryStatistics(c *gin.Context) {
	categories, err := rc.reportService.CategoryStatistics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		responses = append(responses, toCategoryResponse(cat))
	}
	c.JSON(http.StatusOK, gin.H{"categories": responses})
}

// Stats returns the latest externally refreshed summary row.
func (rc *ReportController) Stats(c *gin.Context) {
	stats, err := rc.reportService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_products":     stats.TotalProducts,
		"average_price":      stats.AveragePrice,
		"total_stock_value":  stats.TotalStockValue,
		"low_stock_count":    stats.LowStockCount,
		"discontinued_count": stats.DiscontinuedCount,
		"last_updated":       stats.LastUpdated.Format(time.RFC3339),
	})
}

func toProductResponses(products []*model.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toProductResponse(p))
	}
	return responses
}
