// internal/pipeline/format-request/models.go
package formatrequest

import "ready-assessment/internal/models"

// Input is the raw question set and answer map from an analyze request.
type Input struct {
	Questions []models.Question
	Answers   map[string]string
}

// Output carries the normalized questions and the answered pairs split by
// scoring path. Unanswered questions are dropped from both partitions.
type Output struct {
	Questions  []models.Question
	Objective  []models.QAPair
	Subjective []models.QAPair
}
