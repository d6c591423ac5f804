// internal/pipeline/format-request/handler_test.go
package formatrequest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ready-assessment/internal/common/logger"
	"ready-assessment/internal/models"
)

func TestExecuteAppliesDefaults(t *testing.T) {
	handler := NewHandler(logger.NewTestLogger(t))

	out := handler.Execute(Input{
		Questions: []models.Question{
			{
				Stem:      "How do you handle setbacks?",
				Options:   []models.Option{{Content: "Push through", Score: 2}, {Content: "Give up", Score: 0}},
				Dimension: models.DimensionList{"R"},
			},
		},
		Answers: map[string]string{"1": "1"},
	})

	require.Len(t, out.Questions, 1)
	q := out.Questions[0]
	assert.Equal(t, "1", q.ID)
	assert.Equal(t, models.QuestionSingleChoice, q.Type)
	require.Len(t, q.Options, 2)
	assert.Equal(t, "1", q.Options[0].Key)
	assert.Equal(t, "2", q.Options[1].Key)
}

func TestExecutePartitionsByType(t *testing.T) {
	handler := NewHandler(logger.NewTestLogger(t))

	out := handler.Execute(Input{
		Questions: []models.Question{
			{
				ID:        "1",
				Stem:      "Pick one",
				Type:      models.QuestionSingleChoice,
				Options:   []models.Option{{Key: "1", Score: 4}},
				Dimension: models.DimensionList{"E"},
			},
			{
				ID:        "2",
				Stem:      "Describe your ideal role",
				Type:      models.QuestionSubject,
				Dimension: models.DimensionList{"A"},
				Standard:  "Names a concrete role and a path toward it",
			},
			{
				ID:        "3",
				Stem:      "Why would you switch careers?",
				Type:      models.QuestionCareerTransition,
				Dimension: models.DimensionList{"D"},
			},
		},
		Answers: map[string]string{
			"1": "1",
			"2": "I want to lead a support team.",
			"3": "Better growth prospects.",
		},
	})

	require.Len(t, out.Objective, 1)
	require.Len(t, out.Subjective, 2)

	obj := out.Objective[0]
	assert.Equal(t, "Pick one", obj.Question)
	require.Len(t, obj.Options, 1)
	assert.Nil(t, obj.UserChoice)

	subj := out.Subjective[0]
	assert.Equal(t, "I want to lead a support team.", subj.Answer)
	assert.Equal(t, "Names a concrete role and a path toward it", subj.Standard)
	assert.Empty(t, subj.Options)
}

func TestExecuteDropsUnanswered(t *testing.T) {
	handler := NewHandler(logger.NewTestLogger(t))

	out := handler.Execute(Input{
		Questions: []models.Question{
			{ID: "1", Stem: "Answered", Type: models.QuestionSingleChoice},
			{ID: "2", Stem: "Skipped", Type: models.QuestionSingleChoice},
			{ID: "3", Stem: "Also skipped", Type: models.QuestionSubject},
		},
		Answers: map[string]string{"1": "1"},
	})

	assert.Len(t, out.Questions, 3)
	assert.Len(t, out.Objective, 1)
	assert.Empty(t, out.Subjective)
}

func TestExecuteStripsOptionsFromSubjective(t *testing.T) {
	handler := NewHandler(logger.NewTestLogger(t))

	out := handler.Execute(Input{
		Questions: []models.Question{
			{
				ID:      "1",
				Stem:    "Free text",
				Type:    models.QuestionSubject,
				Options: []models.Option{{Key: "1", Score: 4}},
			},
		},
		Answers: map[string]string{"1": "anything"},
	})

	require.Len(t, out.Questions, 1)
	assert.Empty(t, out.Questions[0].Options)
}
