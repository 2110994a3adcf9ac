package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadscore_backend/internal/leads/service"
	"leadscore_backend/internal/leads/transport"
	"leadscore_backend/platform/httpkit"
	"leadscore_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for lead scoring.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new leads handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Score scores a single lead.
// POST /api/v1/score
func (h *Handler) Score(c *gin.Context) {
	var req transport.ScoreLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Score(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ScoreBatch scores up to 20 leads concurrently.
// POST /api/v1/score/batch
func (h *Handler) ScoreBatch(c *gin.Context) {
	var req transport.BatchScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	items := h.svc.ScoreBatch(c.Request.Context(), req.Leads)
	httpkit.OK(c, transport.BatchScoreResponse{Results: items})
}

// List returns all persisted lead records. Raw email and phone are
// operational data, so this route sits behind auth.
// GET /api/v1/leads
func (h *Handler) List(c *gin.Context) {
	leads, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"leads": leads, "count": len(leads)})
}

// Stats returns aggregate scoring statistics.
// GET /api/v1/stats
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, stats)
}

// SampleData returns an example scoring payload.
// GET /api/v1/sample-data
func (h *Handler) SampleData(c *gin.Context) {
	httpkit.OK(c, transport.SampleData())
}

// Health reports service, model, and data status.
// GET /api/health
func (h *Handler) Health(c *gin.Context) {
	httpkit.OK(c, h.svc.Health(c.Request.Context()))
}
