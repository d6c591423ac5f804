// internal/assessment/service.go

// Package assessment sequences the scoring pipeline for one analyze
// request: format, objective scoring, subjective scoring, report
// generation, then the results log.
package assessment

import (
	"context"
	"time"

	"ready-assessment/internal/common/logger"
	"ready-assessment/internal/common/metrics"
	"ready-assessment/internal/models"
	formatrequest "ready-assessment/internal/pipeline/format-request"
	generatereport "ready-assessment/internal/pipeline/generate-report"
	scoreobjective "ready-assessment/internal/pipeline/score-objective"
	scoresubjective "ready-assessment/internal/pipeline/score-subjective"
	"ready-assessment/internal/store"
)

type Service struct {
	format     *formatrequest.Handler
	objective  *scoreobjective.Handler
	subjective *scoresubjective.Handler
	report     *generatereport.Handler
	results    *store.ResultLog
	logger     logger.Logger
}

func NewService(format *formatrequest.Handler, objective *scoreobjective.Handler,
	subjective *scoresubjective.Handler, report *generatereport.Handler,
	results *store.ResultLog, log logger.Logger) *Service {
	return &Service{
		format:     format,
		objective:  objective,
		subjective: subjective,
		report:     report,
		results:    results,
		logger:     log,
	}
}

// Analyze runs the full pipeline for one request. Subjective failures have
// already been degraded to fallbacks by the time totals are computed, so
// the only error paths here are report generation and extraction.
func (s *Service) Analyze(ctx context.Context, req *models.AnalyzeRequest) (models.Report, error) {
	start := time.Now()

	formatted := s.format.Execute(formatrequest.Input{
		Questions: req.Questions,
		Answers:   req.Answers,
	})

	objectivePairs, objectiveScores := s.objective.Execute(formatted.Objective)
	subjective := s.subjective.Execute(ctx, formatted.Subjective)

	out, err := s.report.Execute(ctx, &generatereport.Input{
		UserInfo:         req.UserInfo,
		ObjectivePairs:   objectivePairs,
		Analysis:         subjective.Analysis,
		ObjectiveScores:  objectiveScores,
		SubjectiveScores: subjective.Scores,
	})
	if err != nil {
		metrics.AssessmentRequests.WithLabelValues("error").Inc()
		return nil, err
	}

	s.results.Append(req.Username(), out.Report)
	metrics.AssessmentRequests.WithLabelValues("success").Inc()

	s.logger.Info("Assessment complete", map[string]interface{}{
		"username":    req.Username(),
		"duration_ms": time.Since(start).Milliseconds(),
		"stored":      s.results.Len(),
	})
	return out.Report, nil
}

// Results exposes the in-memory log for the introspection endpoint.
func (s *Service) Results() []models.ResultEntry {
	return s.results.Snapshot()
}
