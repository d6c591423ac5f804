// internal/pipeline/generate-report/handler.go

// Package generatereport runs the single narrative-report call and forces
// the report's per-dimension scores back onto the locally computed totals.
package generatereport

import (
	"context"
	"time"

	apperrors "ready-assessment/internal/common/errors"
	"ready-assessment/internal/common/extract"
	"ready-assessment/internal/common/genai"
	"ready-assessment/internal/common/logger"
	"ready-assessment/internal/common/metrics"
	"ready-assessment/internal/models"
)

type Handler struct {
	client genai.Client
	logger logger.Logger
}

func NewHandler(client genai.Client, log logger.Logger) *Handler {
	return &Handler{client: client, logger: log}
}

// Execute computes the per-dimension totals, generates the narrative report
// in one model call, and reconciles the result. Unlike subjective scoring
// there is no fallback here: any failure aborts the whole assessment.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	totals := input.ObjectiveScores.Plus(input.SubjectiveScores)
	prompt := buildReportPrompt(input, totals)

	start := time.Now()
	raw, err := h.client.Complete(ctx, prompt)
	metrics.GenAICallDuration.WithLabelValues("generate-report").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GenAICalls.WithLabelValues("generate-report", "error").Inc()
		return nil, apperrors.NewReportGenerationFailedError(err)
	}
	metrics.GenAICalls.WithLabelValues("generate-report", "success").Inc()

	payload, err := extract.Payload(raw)
	if err != nil {
		return nil, apperrors.NewReportGenerationFailedError(err)
	}

	report := models.Report(payload)
	reconcile(report, input, totals)

	h.logger.Info("Report generated", map[string]interface{}{
		"total_scores": totals,
	})
	return &Output{Report: report, TotalScores: totals}, nil
}

// reconcile attaches the locally computed score maps and the raw analysis
// to the report, then overwrites every known dimension's narrative score
// with the computed total. The model's arithmetic is never trusted.
func reconcile(report models.Report, input *Input, totals models.DimensionScores) {
	report["objective_scores"] = input.ObjectiveScores
	report["subjective_scores"] = input.SubjectiveScores
	report["dimension_scores"] = totals
	report["subjective_analysis"] = input.Analysis

	dims, ok := report["dimensions"].(map[string]interface{})
	if !ok {
		return
	}
	for code, detail := range dims {
		dim, known := models.ParseDimension(code)
		if !known {
			continue
		}
		if m, ok := detail.(map[string]interface{}); ok {
			m["score"] = totals[dim]
		}
	}
}
