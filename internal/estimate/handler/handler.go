package handler

import (
	"net/http"

	"roofscope_backend/internal/estimate/service"
	"roofscope_backend/internal/estimate/transport"
	"roofscope_backend/platform/httpkit"
	"roofscope_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgInvalidRequest = "invalid request"

// Handler handles HTTP requests for cost estimates.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new estimate handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the estimate routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
}

// Create computes a cost breakdown from the submitted project facts.
func (h *Handler) Create(c *gin.Context) {
	var req transport.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	breakdown, err := h.svc.Estimate(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, breakdown)
}
