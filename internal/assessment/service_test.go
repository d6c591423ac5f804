// internal/assessment/service_test.go
package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ready-assessment/internal/common/errors"
	"ready-assessment/internal/common/logger"
	"ready-assessment/internal/models"
	formatrequest "ready-assessment/internal/pipeline/format-request"
	generatereport "ready-assessment/internal/pipeline/generate-report"
	scoreobjective "ready-assessment/internal/pipeline/score-objective"
	scoresubjective "ready-assessment/internal/pipeline/score-subjective"
	"ready-assessment/internal/store"
)

// scriptedClient answers scoring prompts and the report prompt from canned
// responses, optionally failing specific calls.
type scriptedClient struct {
	scoringByDim map[string]string
	failScoring  map[string]bool
	reportJSON   string
	failReport   bool
	calls        int
}

func (c *scriptedClient) Complete(ctx context.Context, prompt string) (string, error) {
	c.calls++
	if strings.Contains(prompt, "assessment report") {
		if c.failReport {
			return "", errors.New("model offline")
		}
		return c.reportJSON, nil
	}
	for dim, fail := range c.failScoring {
		if fail && strings.Contains(prompt, "the "+dim+" dimension") {
			return "", errors.New("model offline")
		}
	}
	for dim, resp := range c.scoringByDim {
		if strings.Contains(prompt, "the "+dim+" dimension") {
			return resp, nil
		}
	}
	return `{"score": 3, "analysis": "ok", "key_traits": []}`, nil
}

func defaultReportJSON() string {
	return `{"dimensions": {
		"R": {"title": "Resilience", "score": 0, "interpretation": "..."},
		"E": {"title": "Employment Readiness", "score": 0, "interpretation": "..."}
	}}`
}

func newService(t *testing.T, client *scriptedClient) (*Service, *store.ResultLog) {
	log := logger.NewTestLogger(t)
	results := store.NewResultLog()
	svc := NewService(
		formatrequest.NewHandler(log),
		scoreobjective.NewHandler(log),
		scoresubjective.NewHandler(client, log),
		generatereport.NewHandler(client, log),
		results,
		log,
	)
	return svc, results
}

func choiceQuestion(id, dim string, scores ...int) models.Question {
	opts := make([]models.Option, len(scores))
	for i, s := range scores {
		opts[i] = models.Option{Key: fmt.Sprintf("%d", i+1), Content: fmt.Sprintf("option %d", i+1), Score: s}
	}
	return models.Question{
		ID:        id,
		Stem:      "Choose one",
		Type:      models.QuestionSingleChoice,
		Options:   opts,
		Dimension: models.DimensionList{dim},
	}
}

func subjectiveQuestion(id, dim string) models.Question {
	return models.Question{
		ID:        id,
		Stem:      "Tell us more",
		Type:      models.QuestionSubject,
		Dimension: models.DimensionList{dim},
		Standard:  "names specifics",
	}
}

func TestAnalyzeFullPipeline(t *testing.T) {
	client := &scriptedClient{
		scoringByDim: map[string]string{
			"E": `{"score": 4, "analysis": "well prepared", "key_traits": ["skills"]}`,
		},
		reportJSON: defaultReportJSON(),
	}
	svc, results := newService(t, client)

	report, err := svc.Analyze(context.Background(), &models.AnalyzeRequest{
		UserInfo: map[string]interface{}{"username": "alice"},
		Questions: []models.Question{
			choiceQuestion("1", "R", 2, 4),
			subjectiveQuestion("2", "E"),
		},
		Answers: map[string]string{"1": "2", "2": "I have welding certs."},
	})
	require.NoError(t, err)

	// Objective R=4, subjective E=4, totals overwrite the narrative.
	totals := report["dimension_scores"].(models.DimensionScores)
	assert.Equal(t, 4, totals[models.DimensionR])
	assert.Equal(t, 4, totals[models.DimensionE])

	dims := report["dimensions"].(map[string]interface{})
	assert.Equal(t, 4, dims["R"].(map[string]interface{})["score"])
	assert.Equal(t, 4, dims["E"].(map[string]interface{})["score"])

	analysis := report["subjective_analysis"].(map[models.Dimension]models.AnalysisRecord)
	assert.Equal(t, "well prepared", analysis[models.DimensionE]["analysis"])

	// One scoring call plus one report call.
	assert.Equal(t, 2, client.calls)

	entries := results.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].Username)
}

func TestAnalyzeNoSubjectiveQuestions(t *testing.T) {
	client := &scriptedClient{reportJSON: defaultReportJSON()}
	svc, _ := newService(t, client)

	report, err := svc.Analyze(context.Background(), &models.AnalyzeRequest{
		Questions: []models.Question{choiceQuestion("1", "R", 2, 4)},
		Answers:   map[string]string{"1": "1"},
	})
	require.NoError(t, err)

	// Only the report call happened.
	assert.Equal(t, 1, client.calls)

	subjective := report["subjective_scores"].(models.DimensionScores)
	totals := report["dimension_scores"].(models.DimensionScores)
	for _, d := range models.AllDimensions {
		assert.Equal(t, 0, subjective[d])
	}
	objective := report["objective_scores"].(models.DimensionScores)
	assert.Equal(t, objective, totals)
}

func TestAnalyzeSubjectiveFailureIsIsolated(t *testing.T) {
	client := &scriptedClient{
		failScoring: map[string]bool{"E": true},
		reportJSON:  defaultReportJSON(),
	}
	svc, _ := newService(t, client)

	report, err := svc.Analyze(context.Background(), &models.AnalyzeRequest{
		Questions: []models.Question{
			subjectiveQuestion("1", "E"),
			subjectiveQuestion("2", "Y"),
		},
		Answers: map[string]string{"1": "answer one", "2": "answer two"},
	})
	require.NoError(t, err)

	subjective := report["subjective_scores"].(models.DimensionScores)
	assert.Equal(t, models.FallbackSubjectiveScore, subjective[models.DimensionE])
	assert.Equal(t, 3, subjective[models.DimensionY])
}

func TestAnalyzeReportFailureAborts(t *testing.T) {
	client := &scriptedClient{failReport: true}
	svc, results := newService(t, client)

	_, err := svc.Analyze(context.Background(), &models.AnalyzeRequest{
		Questions: []models.Question{choiceQuestion("1", "R", 4)},
		Answers:   map[string]string{"1": "1"},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeReportGenerationFailed, apperrors.CodeOf(err))
	assert.Equal(t, 0, results.Len())
}

func TestAnalyzeAppendsResultsInOrder(t *testing.T) {
	client := &scriptedClient{reportJSON: defaultReportJSON()}
	svc, results := newService(t, client)

	for i := 0; i < 3; i++ {
		_, err := svc.Analyze(context.Background(), &models.AnalyzeRequest{
			UserInfo:  map[string]interface{}{"username": fmt.Sprintf("user-%d", i)},
			Questions: []models.Question{choiceQuestion("1", "R", 4)},
			Answers:   map[string]string{"1": "1"},
		})
		require.NoError(t, err)
	}

	entries := results.Snapshot()
	require.Len(t, entries, 3)
	for i, entry := range entries {
		assert.Equal(t, fmt.Sprintf("user-%d", i), entry.Username)
	}
}

func TestAnalyzeDefaultsUsername(t *testing.T) {
	client := &scriptedClient{reportJSON: defaultReportJSON()}
	svc, results := newService(t, client)

	_, err := svc.Analyze(context.Background(), &models.AnalyzeRequest{
		Questions: []models.Question{choiceQuestion("1", "R", 4)},
		Answers:   map[string]string{"1": "1"},
	})
	require.NoError(t, err)

	entries := results.Snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, "unknown", entries[0].Username)
}
