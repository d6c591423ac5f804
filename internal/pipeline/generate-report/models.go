// internal/pipeline/generate-report/models.go
package generatereport

import "ready-assessment/internal/models"

// Input bundles everything the narrative prompt needs: the user profile,
// the scored objective pairs, the per-dimension subjective analysis, and
// both partial score maps.
type Input struct {
	UserInfo         map[string]interface{}
	ObjectivePairs   []models.QAPair
	Analysis         map[models.Dimension]models.AnalysisRecord
	ObjectiveScores  models.DimensionScores
	SubjectiveScores models.DimensionScores
}

// Output is the reconciled report plus the authoritative totals.
type Output struct {
	Report      models.Report
	TotalScores models.DimensionScores
}
