package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradegate_backend/internal/catalog/service"
	"tradegate_backend/internal/catalog/transport"
	"tradegate_backend/platform/httpkit"
	"tradegate_backend/platform/logger"
	"tradegate_backend/platform/validator"
)

// PublicHandler handles unauthenticated catalog browsing for the storefront.
// Only published products are visible here.
type PublicHandler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

// NewPublicHandler creates a new public catalog handler.
func NewPublicHandler(svc *service.Service, val *validator.Validator, log *logger.Logger) *PublicHandler {
	return &PublicHandler{svc: svc, val: val, log: log}
}

// RegisterRoutes registers the public catalog routes (no auth middleware).
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:slug", h.GetProductBySlug)
	rg.GET("/categories", h.ListCategories)
	rg.GET("/categories/:slug", h.GetCategoryBySlug)
}

// ListProducts handles GET /api/v1/products.
func (h *PublicHandler) ListProducts(c *gin.Context) {
	var query transport.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	result, err := h.svc.ListProducts(c.Request.Context(), query, true)
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetProductBySlug handles GET /api/v1/products/:slug.
func (h *PublicHandler) GetProductBySlug(c *gin.Context) {
	result, err := h.svc.GetPublishedProductBySlug(c.Request.Context(), c.Param("slug"))
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListCategories handles GET /api/v1/categories.
func (h *PublicHandler) ListCategories(c *gin.Context) {
	result, err := h.svc.ListCategories(c.Request.Context())
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetCategoryBySlug handles GET /api/v1/categories/:slug. The response
// includes the category's published products.
func (h *PublicHandler) GetCategoryBySlug(c *gin.Context) {
	result, err := h.svc.GetCategoryDetailBySlug(c.Request.Context(), c.Param("slug"))
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}
