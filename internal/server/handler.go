// internal/server/handler.go

// Package server exposes the assessment pipeline over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ready-assessment/internal/assessment"
	apperrors "ready-assessment/internal/common/errors"
	"ready-assessment/internal/common/logger"
	"ready-assessment/internal/common/observability"
	"ready-assessment/internal/models"
)

type Handler struct {
	service *assessment.Service
	logger  logger.Logger
	obs     *observability.Observability
}

func NewHandler(service *assessment.Service, log logger.Logger, obs *observability.Observability) *Handler {
	return &Handler{service: service, logger: log, obs: obs}
}

// Analyze handles POST /api/analyze. The HTTP status always mirrors the
// envelope code, so callers can rely on either.
func (h *Handler) Analyze(c *gin.Context) {
	start := time.Now()
	requestID := uuid.NewString()
	log := h.logger.WithFields(map[string]interface{}{"request_id": requestID})

	body, err := c.GetRawData()
	if err != nil {
		h.respondError(c, start, http.StatusBadRequest, "could not read request body")
		return
	}

	if err := validateAnalyzeRequest(body); err != nil {
		log.Warn("Rejected analyze request", map[string]interface{}{"error": err.Error()})
		h.respondError(c, start, http.StatusBadRequest, err.Error())
		return
	}

	var req models.AnalyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.respondError(c, start, http.StatusBadRequest, "malformed request: "+err.Error())
		return
	}

	log.Info("Analyze request accepted", map[string]interface{}{
		"username":  req.Username(),
		"questions": len(req.Questions),
		"answers":   len(req.Answers),
	})

	report, err := h.service.Analyze(c.Request.Context(), &req)
	if err != nil {
		log.Error("Analysis failed", map[string]interface{}{"error": err.Error()})
		h.respondError(c, start, http.StatusInternalServerError, "analysis failed: "+describeFailure(err))
		return
	}

	h.obs.RecordRequest(c.Request.Context(), "success")
	h.obs.RecordRequestDuration(c.Request.Context(), time.Since(start), "success")
	c.JSON(http.StatusOK, models.APIResponse{
		Code:    http.StatusOK,
		Message: "analysis succeeded",
		Data:    report,
	})
}

// resultSummary is the introspection view of one stored result. The full
// narrative stays internal.
type resultSummary struct {
	Username        string      `json:"username"`
	Timestamp       time.Time   `json:"timestamp"`
	DimensionScores interface{} `json:"dimension_scores,omitempty"`
}

// Results handles GET /api/results, listing stored analyses in arrival
// order.
func (h *Handler) Results(c *gin.Context) {
	entries := h.service.Results()
	summaries := make([]resultSummary, 0, len(entries))
	for _, entry := range entries {
		summaries = append(summaries, resultSummary{
			Username:        entry.Username,
			Timestamp:       entry.Timestamp,
			DimensionScores: entry.Result["dimension_scores"],
		})
	}
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "ok", "data": summaries})
}

// Root handles GET /.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the career assessment API",
		"endpoints": gin.H{
			"analyze": "POST /api/analyze",
			"results": "GET /api/results",
			"health":  "GET /healthz",
			"metrics": "GET /metrics",
		},
	})
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) respondError(c *gin.Context, start time.Time, status int, message string) {
	h.obs.RecordRequest(c.Request.Context(), "error")
	h.obs.RecordRequestDuration(c.Request.Context(), time.Since(start), "error")
	c.JSON(status, models.APIResponse{
		Code:    status,
		Message: message,
		Data:    nil,
	})
}

// describeFailure keeps the outward message human-readable while the full
// structured error goes to the log.
func describeFailure(err error) string {
	stdErr := apperrors.AsStandard(err)
	if stdErr.Details != "" {
		return stdErr.Message + ": " + stdErr.Details
	}
	return stdErr.Message
}
