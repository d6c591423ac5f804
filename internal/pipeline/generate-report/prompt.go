// internal/pipeline/generate-report/prompt.go
package generatereport

import (
	"encoding/json"
	"fmt"
	"strings"

	"ready-assessment/internal/models"
)

// buildReportPrompt assembles the single narrative-report instruction. The
// computed totals are embedded and declared authoritative; the model writes
// prose, not arithmetic.
func buildReportPrompt(input *Input, totals models.DimensionScores) string {
	var parts []string
	parts = append(parts,
		"[IMPORTANT] You are a professional career psychometric analyst. Your task is to produce a complete psychometric assessment report of about 1500 words.",
		"",
		"[Data]",
		"User info:",
		marshalSection(input.UserInfo),
		"",
		"Multiple-choice answers:",
		marshalSection(input.ObjectivePairs),
		"",
		"Open-ended analysis results:",
		marshalSection(input.Analysis),
		"",
		"[Dimension scores]",
		"Multiple-choice scores:",
		marshalSection(input.ObjectiveScores),
		"",
		"Open-ended scores:",
		marshalSection(input.SubjectiveScores),
		"",
		"Total scores (multiple-choice plus open-ended):",
		marshalSection(totals),
		"",
		"[Scoring rules]",
		"1. There are 20 multiple-choice questions worth 4 points each, 80 points total.",
		"   Their scores are already computed and given above.",
		"2. There are 5 open-ended questions worth 4 points each, 20 points total.",
		"   Each dimension (R, E, A, D, Y) has one open-ended question; the scores are already computed and given above.",
		"3. The final scores are already computed and given in the totals above. Use those numbers as-is.",
		"",
		"[Response format]",
		"Return a JSON object with a dimensions object in exactly this shape, every dimension fully filled in:",
		reportShape(),
		"",
		"[Length requirements]",
		"- interpretation: 200-300 words",
		"- abilityDescription: 400-500 words",
		"- improvementTitle section text: 200-300 words",
		"- each item under suggestions: 200-300 words",
		"",
		"[Other requirements]",
		"1. All field names must be in English.",
		"2. Scores must be integers.",
		"3. When assessing each dimension, weigh both the multiple-choice answers and the open-ended analysis, summing the two scores.",
		"4. The JSON must be valid and directly parseable.",
	)

	return strings.Join(parts, "\n")
}

func reportShape() string {
	var b strings.Builder
	b.WriteString("{\n  \"dimensions\": {\n")
	for i, d := range models.AllDimensions {
		fmt.Fprintf(&b, "    %q: {\n", string(d))
		fmt.Fprintf(&b, "      \"title\": %q,\n", d.Title())
		b.WriteString("      \"score\": 0,\n")
		b.WriteString("      \"interpretation\": \"...\",\n")
		b.WriteString("      \"abilityTitle\": \"...\",\n")
		b.WriteString("      \"abilityDescription\": \"...\",\n")
		b.WriteString("      \"improvementTitle\": \"...\",\n")
		b.WriteString("      \"suggestions\": [{\"title\": \"...\", \"items\": [\"...\", \"...\"]}]\n")
		if i == len(models.AllDimensions)-1 {
			b.WriteString("    }\n")
		} else {
			b.WriteString("    },\n")
		}
	}
	b.WriteString("  },\n  \"dimension_scores\": {\"R\": 0, \"E\": 0, \"A\": 0, \"D\": 0, \"Y\": 0}\n}")
	return b.String()
}

func marshalSection(v interface{}) string {
	serialized, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(serialized)
}
