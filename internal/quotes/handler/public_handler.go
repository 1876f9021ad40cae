package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradegate_backend/internal/quotes/service"
	"tradegate_backend/internal/quotes/transport"
	"tradegate_backend/platform/httpkit"
	"tradegate_backend/platform/logger"
	"tradegate_backend/platform/validator"
)

// PublicHandler handles the unauthenticated quote submission endpoint.
type PublicHandler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

// NewPublicHandler creates a new public quotes handler.
func NewPublicHandler(svc *service.Service, val *validator.Validator, log *logger.Logger) *PublicHandler {
	return &PublicHandler{svc: svc, val: val, log: log}
}

// RegisterRoutes registers the public quote routes (no auth middleware).
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Submit)
}

// Submit handles POST /api/v1/quotes. Validation failures come back as a
// field → messages map; a successful submission returns 201 with the new
// quote's id.
func (h *PublicHandler) Submit(c *gin.Context) {
	var req transport.SubmitQuoteRequest
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
	httpkit.JSON(c, http.StatusCreated, result)
}
