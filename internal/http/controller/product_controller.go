package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"productcatalog/internal/model"
	"productcatalog/internal/repository"
	"productcatalog/internal/schema"
	"productcatalog/internal/service"
)

// ProductController handles HTTP requests for product operations.
type ProductController struct {
	productService *service.ProductService
}

// NewProductController creates a new ProductController with the given product service.
func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// ProductRequest represents the request body for creating or updating a product.
type ProductRequest struct {
	Name           string           `json:"name" binding:"required"`
	Description    string           `json:"description"`
	Price          decimal.Decimal  `json:"price"`
	StockQuantity  int              `json:"stock_quantity"`
	CategoryID     int64            `json:"category_id" binding:"required"`
	SupplierID     *int64           `json:"supplier_id"`
	SKU            string           `json:"sku"`
	Weight         *decimal.Decimal `json:"weight"`
	Dimensions     string           `json:"dimensions"`
	IsDiscontinued bool             `json:"is_discontinued"`
	ReorderLevel   int              `json:"reorder_level"`
}

// ProductResponse represents the response body for a product.
type ProductResponse struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	Price          decimal.Decimal  `json:"price"`
	StockQuantity  int              `json:"stock_quantity"`
	CategoryID     int64            `json:"category_id"`
	SupplierID     *int64           `json:"supplier_id,omitempty"`
	SKU            string           `json:"sku,omitempty"`
	Weight         *decimal.Decimal `json:"weight,omitempty"`
	Dimensions     string           `json:"dimensions,omitempty"`
	IsDiscontinued bool             `json:"is_discontinued"`
	ReorderLevel   int              `json:"reorder_level"`
	CreatedDate    string           `json:"created_date"`
	ModifiedDate   string           `json:"modified_date,omitempty"`
}

func (req *ProductRequest) toModel() *model.Product {
	return &model.Product{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		StockQuantity:  req.StockQuantity,
		CategoryID:     req.CategoryID,
		SupplierID:     req.SupplierID,
		SKU:            req.SKU,
		Weight:         req.Weight,
		Dimensions:     req.Dimensions,
		IsDiscontinued: schema.BoolInt(req.IsDiscontinued),
		ReorderLevel:   req.ReorderLevel,
	}
}

// CreateProduct handles the HTTP POST request for creating a new product.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := req.toModel()
	id, err := pc.productService.Create(c.Request.Context(), product)
	if err != nil {
		respondError(c, err)
		return
	}

	product.ID = id
	c.JSON(http.StatusCreated, toProductResponse(product))
}

// GetProduct handles the HTTP GET request for a single product.
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := pc.productService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// UpdateProduct handles the HTTP PUT request replacing a product record.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := req.toModel()
	product.ID = id
	if err := pc.productService.Update(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// UpdateStockRequest represents the request body for a stock adjustment.
type UpdateStockRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateStock handles the HTTP PATCH request mutating only the stock field.
func (pc *ProductController) UpdateStock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.productService.UpdateStock(c.Request.Context(), id, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "stock updated successfully"})
}

// DeleteProduct handles the HTTP DELETE request for deleting a product by ID.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := pc.productService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
}

// ListProductsRequest represents the query parameters for listing products.
type ListProductsRequest struct {
	Limit int32  `form:"limit"`
	Token string `form:"token"`
}

// ListProductsResponse represents the response body for listing products.
type ListProductsResponse struct {
	Products      []ProductResponse `json:"products"`
	NextPageToken string            `json:"next_page_token,omitempty"`
}

// ListProducts handles the HTTP GET request for listing products with pagination.
func (pc *ProductController) ListProducts(c *gin.Context) {
	var req ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := repository.NewQuery()
	if err := query.ApplyPagination(req.Limit, req.Token); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := pc.productService.List(c.Request.Context(), *query)
	if err != nil {
		respondError(c, err)
		return
	}

	var productResponses []ProductResponse
	for _, product := range products {
		productResponses = append(productResponses, toProductResponse(product))
	}

	response := ListProductsResponse{
		Products: productResponses,
	}

	// Generate next page token if we have results
	if len(products) > 0 {
		lastProduct := products[len(products)-1]
		paginator := repository.Paginator{
			LastID:        lastProduct.ID,
			LastCreatedAt: lastProduct.CreatedDate,
		}
		response.NextPageToken = paginator.Encode()
	}

	c.JSON(http.StatusOK, response)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return 0, false
	}
	return id, true
}

func toProductResponse(product *model.Product) ProductResponse {
	resp := ProductResponse{
		ID:             product.ID,
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price,
		StockQuantity:  product.StockQuantity,
		CategoryID:     product.CategoryID,
		SupplierID:     product.SupplierID,
		SKU:            product.SKU,
		Weight:         product.Weight,
		Dimensions:     product.Dimensions,
		IsDiscontinued: product.IsDiscontinued.Bool(),
		ReorderLevel:   product.ReorderLevel,
		CreatedDate:    product.CreatedDate.Format(time.RFC3339),
	}
	if product.ModifiedDate != nil {
		resp.ModifiedDate = product.ModifiedDate.Format(time.RFC3339)
	}
	return resp
}
