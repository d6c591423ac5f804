// internal/pipeline/score-subjective/models.go
package scoresubjective

import "ready-assessment/internal/models"

// Response is one question/answer/rubric triple grouped under a dimension.
// It is serialized verbatim into the scoring prompt.
type Response struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Standard string `json:"standard"`
}

// Output holds the per-dimension analysis records and the bounded integer
// scores extracted from them. All five dimension keys are present in
// Scores; Analysis contains only the dimensions that had grouped answers.
type Output struct {
	Analysis map[models.Dimension]models.AnalysisRecord
	Scores   models.DimensionScores
}
