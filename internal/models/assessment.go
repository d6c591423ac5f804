// internal/models/assessment.go
package models

import "time"

// QuestionType distinguishes choice questions, scored from the option
// table, from free-text questions delegated to the text-generation model.
type QuestionType string

const (
	QuestionSingleChoice     QuestionType = "single_choice"
	QuestionSubject          QuestionType = "subject_question"
	QuestionCareerTransition QuestionType = "career_transition"
	QuestionCareerChoice     QuestionType = "career_choice"
)

// IsSubjective reports whether answers of this type need qualitative
// judgment rather than an option lookup.
func (t QuestionType) IsSubjective() bool {
	switch t {
	case QuestionSubject, QuestionCareerTransition, QuestionCareerChoice:
		return true
	default:
		return false
	}
}

// Option is one selectable answer of a choice question.
type Option struct {
	Key     string `json:"key"`
	Content string `json:"content"`
	Score   int    `json:"score"`
}

// Question is a formatted assessment question. Options are present only
// for choice types.
type Question struct {
	ID        string        `json:"id"`
	Stem      string        `json:"stem"`
	Type      QuestionType  `json:"type"`
	Options   []Option      `json:"options"`
	Dimension DimensionList `json:"dimension"`
	Standard  string        `json:"standard"`
}

// UserChoice records the option a user actually selected on a choice
// question, resolved by key match.
type UserChoice struct {
	Key     string `json:"key"`
	Content string `json:"content"`
	Score   int    `json:"score"`
}

// QAPair couples a question with the user's submitted answer. Objective
// pairs carry the option table and, once scored, the resolved choice.
type QAPair struct {
	Question   string        `json:"question"`
	Dimension  DimensionList `json:"dimension"`
	Answer     string        `json:"answer"`
	Type       QuestionType  `json:"type"`
	Standard   string        `json:"standard"`
	Options    []Option      `json:"options,omitempty"`
	UserChoice *UserChoice   `json:"user_choice,omitempty"`
}

// AnalysisRecord is the structured value the text-generation model returns
// for one subjective dimension, or the fixed fallback when that call fails.
type AnalysisRecord map[string]interface{}

const (
	// FallbackSubjectiveScore is assigned when a dimension's subjective
	// call fails for any reason.
	FallbackSubjectiveScore = 2

	// MaxSubjectiveScore bounds a single subjective answer.
	MaxSubjectiveScore = 4
)

// FallbackAnalysis is the degraded record stored when scoring a dimension
// fails. The middle score keeps totals sane without trusting the failure.
func FallbackAnalysis(reason string) AnalysisRecord {
	return AnalysisRecord{
		"analysis":   "analysis failed: " + reason,
		"score":      FallbackSubjectiveScore,
		"key_traits": []string{},
	}
}

// Report is the assembled narrative report. Its shape is authored by the
// text-generation model and reconciled locally, so it stays dynamic.
type Report map[string]interface{}

// ResultEntry is one completed analysis held in the in-memory results log.
type ResultEntry struct {
	Username  string    `json:"username"`
	Result    Report    `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}
