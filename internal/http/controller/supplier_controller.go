package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"productcatalog/internal/model"
	"productcatalog/internal/schema"
	"productcatalog/internal/service"
)

// SupplierController handles HTTP requests for supplier operations.
type SupplierController struct {
	supplierService *service.SupplierService
}

// NewSupplierController creates a new SupplierController.
func NewSupplierController(supplierService *service.SupplierService) *SupplierController {
	return &SupplierController{supplierService: supplierService}
}

// SupplierRequest represents the request body for creating a supplier.
type SupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	IsActive      bool   `json:"is_active"`
}

// SupplierResponse represents the response body for a supplier.
type SupplierResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	IsActive      bool   `json:"is_active"`
	ProductCount  int    `json:"product_count,omitempty"`
}

// CreateSupplier handles the HTTP POST request for creating a supplier.
func (sc *SupplierController) CreateSupplier(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier := &model.Supplier{
		Name:          req.Name,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		IsActive:      schema.BoolInt(req.IsActive),
	}
	id, err := sc.supplierService.Create(c.Request.Context(), supplier)
	if err != nil {
		respondError(c, err)
		return
	}

	supplier.ID = id
	c.JSON(http.StatusCreated, toSupplierResponse(supplier))
}

// ListSuppliers handles the HTTP GET request for listing suppliers.
func (sc *SupplierController) ListSuppliers(c *gin.Context) {
	suppliers, err := sc.supplierService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]SupplierResponse, 0, len(suppliers))
	for _, supplier := range suppliers {
		responses = append(responses, toSupplierResponse(supplier))
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": responses})
}

// DeleteSupplier handles the HTTP DELETE request for a supplier. Referencing
// products keep existing with their supplier reference cleared.
func (sc *SupplierController) DeleteSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := sc.supplierService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "supplier deleted successfully"})
}

func toSupplierResponse(supplier *model.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            supplier.ID,
		Name:          supplier.Name,
		Address:       supplier.Address,
		ContactPerson: supplier.ContactPerson,
		Phone:         supplier.Phone,
		Email:         supplier.Email,
		IsActive:      supplier.IsActive.Bool(),
		ProductCount:  supplier.ProductCount,
	}
}
