// internal/common/extract/extract.go

// Package extract locates and parses the JSON payload embedded in raw
// text-generation output. The model is asked for bare JSON but routinely
// wraps it in prose or a fenced code block and leaves trailing commas, so
// extraction is tolerant of both; anything still unparseable after repair
// is a hard failure for that call.
package extract

import (
	"encoding/json"
	"regexp"

	"github.com/kaptinlin/jsonrepair"

	apperrors "ready-assessment/internal/common/errors"
)

var fencedJSON = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")

// Payload parses the structured value carried by raw model output.
//
// A ```json fenced block takes priority over the whole text. The narrow
// trailing-comma repair runs first; if the candidate still fails to parse,
// the jsonrepair library gets one shot at heavier defects (unquoted keys,
// single quotes) before the extraction fails.
func Payload(raw string) (map[string]interface{}, error) {
	candidate := raw
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		candidate = m[1]
	}

	repaired := RepairTrailingCommas(candidate)

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(repaired), &data); err != nil {
		fixed, repairErr := jsonrepair.JSONRepair(candidate)
		if repairErr != nil {
			return nil, apperrors.NewExtractionFailedError(err)
		}
		if err := json.Unmarshal([]byte(fixed), &data); err != nil {
			return nil, apperrors.NewExtractionFailedError(err)
		}
	}

	attachDimensionScores(data)
	return data, nil
}

// attachDimensionScores synthesizes a flat dimension_scores map from a
// nested dimensions object, as a derived convenience view. The original
// structure is left untouched.
func attachDimensionScores(data map[string]interface{}) {
	dims, ok := data["dimensions"].(map[string]interface{})
	if !ok {
		return
	}

	scores := make(map[string]interface{})
	for code, detail := range dims {
		if m, ok := detail.(map[string]interface{}); ok {
			if s, ok := m["score"]; ok {
				scores[code] = s
			}
		}
	}
	data["dimension_scores"] = scores
}
