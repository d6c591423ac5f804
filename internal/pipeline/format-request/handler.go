// internal/pipeline/format-request/handler.go

// Package formatrequest normalizes inbound questions and pairs them with
// submitted answers before any scoring happens.
package formatrequest

import (
	"strconv"

	"ready-assessment/internal/common/logger"
	"ready-assessment/internal/models"
)

type Handler struct {
	logger logger.Logger
}

func NewHandler(log logger.Logger) *Handler {
	return &Handler{logger: log}
}

// Execute normalizes every question, then builds QA pairs for the answered
// ones and partitions them into objective and subjective sets.
//
// Normalization defaults: missing id becomes the 1-based position, missing
// type becomes single_choice, missing option keys become the 1-based option
// position. Option tables survive only on choice questions.
func (h *Handler) Execute(input Input) *Output {
	out := &Output{
		Questions: make([]models.Question, 0, len(input.Questions)),
	}

	for i, q := range input.Questions {
		out.Questions = append(out.Questions, normalizeQuestion(q, i))
	}

	for _, q := range out.Questions {
		answer, answered := input.Answers[q.ID]
		if !answered {
			continue
		}

		pair := models.QAPair{
			Question:  q.Stem,
			Dimension: q.Dimension,
			Answer:    answer,
			Type:      q.Type,
			Standard:  q.Standard,
		}

		if q.Type.IsSubjective() {
			out.Subjective = append(out.Subjective, pair)
		} else {
			pair.Options = q.Options
			out.Objective = append(out.Objective, pair)
		}
	}

	h.logger.Info("Formatted analyze request", map[string]interface{}{
		"questions":  len(out.Questions),
		"objective":  len(out.Objective),
		"subjective": len(out.Subjective),
	})
	return out
}

func normalizeQuestion(q models.Question, index int) models.Question {
	if q.ID == "" {
		q.ID = strconv.Itoa(index + 1)
	}
	if q.Type == "" {
		q.Type = models.QuestionSingleChoice
	}

	if q.Type == models.QuestionSingleChoice {
		options := make([]models.Option, 0, len(q.Options))
		for j, opt := range q.Options {
			if opt.Key == "" {
				opt.Key = strconv.Itoa(j + 1)
			}
			options = append(options, opt)
		}
		q.Options = options
	} else {
		q.Options = nil
	}
	return q
}
