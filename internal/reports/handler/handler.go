package handler

import (
	"net/http"
	"strconv"

	"roofscope_backend/internal/reports/service"
	"roofscope_backend/internal/reports/transport"
	"roofscope_backend/platform/httpkit"
	"roofscope_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest  = "invalid request"
	msgInvalidReportID = "invalid report id"
	msgAuthRequired    = "authentication required"
)

// Handler handles HTTP requests for report generation and retrieval.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new reports handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the report routes. Generation is open to
// anonymous callers; retrieval, listing and deletion mount on the
// authenticated group.
func (h *Handler) RegisterRoutes(open, owned *gin.RouterGroup) {
	open.POST("", h.Generate)
	owned.GET("", h.List)
	owned.GET("/:id", h.Get)
	owned.GET("/:id/download", h.Download)
	owned.GET("/:id/view", h.View)
	owned.DELETE("/:id", h.Delete)
}

// Generate runs the full report pipeline for the submitted project and
// returns the rendered PDF inline in the response body.
func (h *Handler) Generate(c *gin.Context) {
	var req transport.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var ownerID *uuid.UUID
	if identity := httpkit.GetIdentity(c); identity.IsAuthenticated() {
		id := identity.UserID()
		ownerID = &id
	}

	resp, err := h.svc.Generate(c.Request.Context(), ownerID, req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// Get returns metadata for a persisted report owned by the caller.
func (h *Handler) Get(c *gin.Context) {
	id, ownerID, ok := h.ownedReportID(c)
	if !ok {
		return
	}

	detail, err := h.svc.Get(c.Request.Context(), id, ownerID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, detail)
}

// Download serves the stored PDF as a file attachment.
func (h *Handler) Download(c *gin.Context) {
	id, ownerID, ok := h.ownedReportID(c)
	if !ok {
		return
	}

	fileName, pdfBytes, err := h.svc.Download(c.Request.Context(), id, ownerID)
	if httpkit.HandleError(c, err) {
		return
	}

	servePDFAttachment(c, fileName, pdfBytes)
}

// View serves the stored PDF inline so browsers render it in place.
func (h *Handler) View(c *gin.Context) {
	id, ownerID, ok := h.ownedReportID(c)
	if !ok {
		return
	}

	fileName, pdfBytes, err := h.svc.Download(c.Request.Context(), id, ownerID)
	if httpkit.HandleError(c, err) {
		return
	}

	servePDFInline(c, fileName, pdfBytes)
}

// List returns a paginated summary of the caller's persisted reports.
func (h *Handler) List(c *gin.Context) {
	ownerID, ok := h.requireOwner(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	resp, err := h.svc.List(c.Request.Context(), ownerID, page, pageSize)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// Delete removes a persisted report owned by the caller.
func (h *Handler) Delete(c *gin.Context) {
	id, ownerID, ok := h.ownedReportID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, ownerID); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"deleted": true})
}

func (h *Handler) requireOwner(c *gin.Context) (uuid.UUID, bool) {
	identity := httpkit.GetIdentity(c)
	if !identity.IsAuthenticated() {
		httpkit.Error(c, http.StatusUnauthorized, msgAuthRequired)
		return uuid.Nil, false
	}
	return identity.UserID(), true
}

func (h *Handler) ownedReportID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	ownerID, ok := h.requireOwner(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidReportID)
		return uuid.Nil, uuid.Nil, false
	}

	return id, ownerID, true
}
