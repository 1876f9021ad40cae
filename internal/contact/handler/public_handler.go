package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradegate_backend/internal/contact/service"
	"tradegate_backend/internal/contact/transport"
	"tradegate_backend/platform/httpkit"
	"tradegate_backend/platform/logger"
	"tradegate_backend/platform/validator"
)

// PublicHandler handles the unauthenticated contact form endpoint.
type PublicHandler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

// NewPublicHandler creates a new public contact handler.
func NewPublicHandler(svc *service.Service, val *validator.Validator, log *logger.Logger) *PublicHandler {
	return &PublicHandler{svc: svc, val: val, log: log}
}

// RegisterRoutes registers the public contact routes (no auth middleware).
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Submit)
}

// Submit handles POST /api/v1/contact.
func (h *PublicHandler) Submit(c *gin.Context) {
	var req transport.SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, h.log, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, gin.H{
		"message":   "message received",
		"messageId": result.ID,
	})
}
