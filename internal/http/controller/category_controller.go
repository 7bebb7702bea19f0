package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"productcatalog/internal/model"
	"productcatalog/internal/service"
)

// CategoryController handles HTTP requests for category operations.
type CategoryController struct {
	categoryService *service.CategoryService
}

// NewCategoryController creates a new CategoryController.
func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// CategoryRequest represents the request body for creating a category.
type CategoryRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	ParentCategoryID *int64 `json:"parent_category_id"`
}

// CategoryResponse represents the response body for a category.
type CategoryResponse struct {
	ID               int64              `json:"id"`
	Name             string             `json:"name"`
	Description      string             `json:"description,omitempty"`
	ParentCategoryID *int64             `json:"parent_category_id,omitempty"`
	CreatedDate      string             `json:"created_date"`
	ProductCount     int                `json:"product_count,omitempty"`
	SubCategories    []CategoryResponse `json:"sub_categories,omitempty"`
}

// CreateCategory handles the HTTP POST request for creating a category.
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := &model.Category{
		Name:             req.Name,
		Description:      req.Description,
		ParentCategoryID: req.ParentCategoryID,
	}
	id, err := cc.categoryService.Create(c.Request.Context(), category)
	if err != nil {
		respondError(c, err)
		return
	}

	category.ID = id
	c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// ListCategories handles the HTTP GET request for listing categories.
func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, toCategoryResponse(category))
	}
	c.JSON(http.StatusOK, gin.H{"categories": responses})
}

// DeleteCategory handles the HTTP DELETE request for a category. Categories
// still referenced by products or children yield 409.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := cc.categoryService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted successfully"})
}

func toCategoryResponse(category *model.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:               category.ID,
		Name:             category.Name,
		Description:      category.Description,
		ParentCategoryID: category.ParentCategoryID,
		CreatedDate:      category.CreatedDate.Format(time.RFC3339),
		ProductCount:     category.ProductCount,
	}
	for _, sub := range category.SubCategories {
		resp.SubCategories = append(resp.SubCategories, toCategoryResponse(sub))
	}
	return resp
}
