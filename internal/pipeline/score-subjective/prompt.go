// internal/pipeline/score-subjective/prompt.go
package scoresubjective

import (
	"encoding/json"
	"fmt"
	"strings"

	"ready-assessment/internal/models"
)

// buildScoringPrompt assembles the per-dimension scoring instruction. The
// grouped responses are embedded as indented JSON so the model sees the
// question, the answer, and the grading standard side by side.
func buildScoringPrompt(dim models.Dimension, responses []Response) string {
	serialized, err := json.MarshalIndent(responses, "", "  ")
	if err != nil {
		serialized = []byte("[]")
	}

	var parts []string
	parts = append(parts,
		fmt.Sprintf("You are a professional career psychometric analyst. Analyze the user's answers to the open-ended questions below, extract the key traits they reveal, assess the user's performance on the %s (%s) dimension, and score the answers for this dimension.", dim, dim.Title()),
		"",
		"Scoring context:",
		"- The assessment has 25 questions: 20 multiple-choice and 5 open-ended.",
		"- There are 5 open-ended questions, one per dimension (R, E, A, D, Y).",
		fmt.Sprintf("- Each open-ended question is worth 0 to %d points.", models.MaxSubjectiveScore),
		fmt.Sprintf("- The answers below belong to the %s dimension; give them a single integer score from 0 to %d.", dim, models.MaxSubjectiveScore),
		"- Multiple-choice questions total 80 points and open-ended questions total 20 points, for 100 overall.",
		"",
		"Open-ended answers:",
		string(serialized),
		"",
		"Apply these criteria:",
		"1. Logic: whether the reasoning is sound and the conclusion follows from it.",
		"2. Structure: whether the answer is organized and clearly expressed.",
		"3. Completeness: whether it covers the key points of the grading standard.",
		"4. Accuracy: whether the content is relevant to the question and meets its requirements.",
		"",
		"Bonus signals:",
		"1. Depth: the answer shows real understanding of the problem, profession, or industry.",
		"2. Originality: the answer offers a distinctive viewpoint or fresh thinking.",
		"3. Evidence: the answer supports its points with data or concrete examples.",
		"4. Affect: the user's emotional attitude is positive.",
		"",
		fmt.Sprintf("Using the criteria above, score this dimension's answers from 0 to %d (integer only).", models.MaxSubjectiveScore),
		"",
		"Return JSON including the dimension score (score) as an integer between 0 and 4.",
	)

	return strings.Join(parts, "\n")
}
