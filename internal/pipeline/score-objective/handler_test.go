// internal/pipeline/score-objective/handler_test.go
package scoreobjective

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ready-assessment/internal/common/logger"
	"ready-assessment/internal/models"
)

func TestExecuteResolvesChoiceAndSums(t *testing.T) {
	handler := NewHandler(logger.NewTestLogger(t))

	pairs := []models.QAPair{
		{
			Question:  "How quickly do you recover from setbacks?",
			Dimension: models.DimensionList{"R"},
			Answer:    "2",
			Type:      models.QuestionSingleChoice,
			Options: []models.Option{
				{Key: "1", Content: "Slowly", Score: 2},
				{Key: "2", Content: "Quickly", Score: 4},
			},
		},
	}

	scored, scores := handler.Execute(pairs)

	require.Len(t, scored, 1)
	require.NotNil(t, scored[0].UserChoice)
	assert.Equal(t, "2", scored[0].UserChoice.Key)
	assert.Equal(t, "Quickly", scored[0].UserChoice.Content)
	assert.Equal(t, 4, scored[0].UserChoice.Score)

	assert.Equal(t, 4, scores[models.DimensionR])
	assert.Equal(t, 0, scores[models.DimensionE])
}

func TestExecuteAccumulatesPerDimension(t *testing.T) {
	handler := NewHandler(logger.NewTestLogger(t))

	pairs := []models.QAPair{
		{
			Dimension: models.DimensionList{"E"},
			Answer:    "1",
			Options:   []models.Option{{Key: "1", Score: 3}},
		},
		{
			Dimension: models.DimensionList{"E"},
			Answer:    "2",
			Options:   []models.Option{{Key: "1", Score: 0}, {Key: "2", Score: 2}},
		},
		{
			Dimension: models.DimensionList{"Y"},
			Answer:    "1",
			Options:   []models.Option{{Key: "1", Score: 4}},
		},
	}

	_, scores := handler.Execute(pairs)

	assert.Equal(t, 5, scores[models.DimensionE])
	assert.Equal(t, 4, scores[models.DimensionY])
	assert.Equal(t, 0, scores[models.DimensionR])
}

func TestExecuteNoMatchingOption(t *testing.T) {
	handler := NewHandler(logger.NewTestLogger(t))

	scored, scores := handler.Execute([]models.QAPair{
		{
			Dimension: models.DimensionList{"R"},
			Answer:    "9",
			Options:   []models.Option{{Key: "1", Score: 4}},
		},
	})

	assert.Nil(t, scored[0].UserChoice)
	assert.Equal(t, 0, scores[models.DimensionR])
}

func TestExecuteUnrecognizedDimension(t *testing.T) {
	handler := NewHandler(logger.NewTestLogger(t))

	_, scores := handler.Execute([]models.QAPair{
		{
			Dimension: models.DimensionList{"X"},
			Answer:    "1",
			Options:   []models.Option{{Key: "1", Score: 4}},
		},
	})

	for _, d := range models.AllDimensions {
		assert.Equal(t, 0, scores[d])
	}
}

func TestExecuteAllKeysPresentOnEmptyInput(t *testing.T) {
	handler := NewHandler(logger.NewTestLogger(t))

	scored, scores := handler.Execute(nil)

	assert.Empty(t, scored)
	assert.Len(t, scores, 5)
	for _, d := range models.AllDimensions {
		assert.Contains(t, scores, d)
	}
}
