package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradegate_backend/internal/blog/service"
	"tradegate_backend/internal/blog/transport"
	"tradegate_backend/platform/httpkit"
	"tradegate_backend/platform/logger"
	"tradegate_backend/platform/validator"
)

// PublicHandler serves published posts to the storefront.
type PublicHandler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

// NewPublicHandler creates a new public blog handler.
func NewPublicHandler(svc *service.Service, val *validator.Validator, log *logger.Logger) *PublicHandler {
	return &PublicHandler{svc: svc, val: val, log: log}
}

// RegisterRoutes registers the public blog routes (no auth middleware).
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:slug", h.GetBySlug)
}

// List handles GET /api/v1/posts.
func (h *PublicHandler) List(c *gin.Context) {
	var query transport.ListPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	result, err := h.svc.List(c.Request.Context(), query, true)
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetBySlug handles GET /api/v1/posts/:slug.
func (h *PublicHandler) GetBySlug(c *gin.Context) {
	result, err := h.svc.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.OK(c, result)
}
