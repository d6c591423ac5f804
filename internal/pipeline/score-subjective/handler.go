// internal/pipeline/score-subjective/handler.go

// Package scoresubjective scores free-text answers per dimension through
// the text-generation model, with a fixed fallback so one bad call never
// sinks the whole assessment.
package scoresubjective

import (
	"context"
	"time"

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

// Execute groups the subjective pairs by dimension, scores each populated
// dimension with one model call, and returns analysis records plus bounded
// integer scores. A pair declaring several dimensions is counted toward
// every recognized one.
//
// Failures degrade per dimension, never propagate: a failed call yields
// the fixed fallback record and score, and the other dimensions proceed.
func (h *Handler) Execute(ctx context.Context, pairs []models.QAPair) *Output {
	out := &Output{
		Analysis: make(map[models.Dimension]models.AnalysisRecord),
		Scores:   models.NewDimensionScores(),
	}
	if len(pairs) == 0 {
		return out
	}

	grouped := groupByDimension(pairs)
	for _, dim := range models.AllDimensions {
		if n := len(grouped[dim]); n != 1 {
			h.logger.Warn("Dimension does not have exactly one subjective answer", map[string]interface{}{
				"dimension": string(dim),
				"answers":   n,
			})
		}
	}

	for _, dim := range models.AllDimensions {
		responses := grouped[dim]
		if len(responses) == 0 {
			continue
		}

		record, score, err := h.scoreDimension(ctx, dim, responses)
		if err != nil {
			h.logger.Error("Subjective scoring failed, using fallback", map[string]interface{}{
				"dimension": string(dim),
				"error":     err.Error(),
			})
			metrics.SubjectiveFallbacks.WithLabelValues(string(dim)).Inc()
			out.Analysis[dim] = models.FallbackAnalysis(err.Error())
			out.Scores[dim] = models.FallbackSubjectiveScore
			continue
		}

		out.Analysis[dim] = record
		out.Scores[dim] = score
	}
	return out
}

func (h *Handler) scoreDimension(ctx context.Context, dim models.Dimension, responses []Response) (models.AnalysisRecord, int, error) {
	prompt := buildScoringPrompt(dim, responses)

	start := time.Now()
	raw, err := h.client.Complete(ctx, prompt)
	metrics.GenAICallDuration.WithLabelValues("score-subjective").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GenAICalls.WithLabelValues("score-subjective", "error").Inc()
		return nil, 0, err
	}
	metrics.GenAICalls.WithLabelValues("score-subjective", "success").Inc()

	record, err := extract.Payload(raw)
	if err != nil {
		return nil, 0, err
	}

	score, ok := extractScore(record)
	if !ok {
		h.logger.Warn("Analysis record carries no numeric score", map[string]interface{}{
			"dimension": string(dim),
		})
		return models.AnalysisRecord(record), 0, nil
	}

	clamped := clampScore(score)
	if clamped != score {
		h.logger.Warn("Subjective score out of range, clamping", map[string]interface{}{
			"dimension": string(dim),
			"raw":       score,
			"clamped":   clamped,
		})
		record["score"] = clamped
	}
	return models.AnalysisRecord(record), clamped, nil
}

func groupByDimension(pairs []models.QAPair) map[models.Dimension][]Response {
	grouped := make(map[models.Dimension][]Response)
	for _, pair := range pairs {
		for _, dim := range pair.Dimension.Known() {
			grouped[dim] = append(grouped[dim], Response{
				Question: pair.Question,
				Answer:   pair.Answer,
				Standard: pair.Standard,
			})
		}
	}
	return grouped
}

// extractScore reads an integer score out of a parsed analysis record.
// JSON numbers arrive as float64; anything else is rejected.
func extractScore(record map[string]interface{}) (int, bool) {
	switch v := record["score"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > models.MaxSubjectiveScore {
		return models.MaxSubjectiveScore
	}
	return score
}
