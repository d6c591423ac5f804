// internal/pipeline/score-objective/handler.go

// Package scoreobjective resolves choice answers against option tables and
// sums the winning option scores per dimension. Fully deterministic, no
// external calls.
package scoreobjective

import (
	"ready-assessment/internal/common/logger"
	"ready-assessment/internal/models"
)

type Handler struct {
	logger logger.Logger
}

func NewHandler(log logger.Logger) *Handler {
	return &Handler{logger: log}
}

// Execute resolves each pair's submitted answer by option-key match and
// accumulates resolved scores into the pair's first recognized dimension.
// Pairs with no matching option, or no recognized dimension, contribute 0.
// The returned pairs carry the resolved choice; all five dimension keys are
// present in the score map.
func (h *Handler) Execute(pairs []models.QAPair) ([]models.QAPair, models.DimensionScores) {
	scores := models.NewDimensionScores()
	scored := make([]models.QAPair, len(pairs))

	for i, pair := range pairs {
		for _, opt := range pair.Options {
			if opt.Key == pair.Answer {
				pair.UserChoice = &models.UserChoice{
					Key:     opt.Key,
					Content: opt.Content,
					Score:   opt.Score,
				}
				break
			}
		}

		if pair.UserChoice != nil {
			if dim, ok := pair.Dimension.First(); ok {
				scores[dim] += pair.UserChoice.Score
			}
		}
		scored[i] = pair
	}

	h.logger.Debug("Objective scoring complete", map[string]interface{}{
		"pairs":  len(scored),
		"scores": scores,
	})
	return scored, scores
}
