// internal/server/schema.go
package server

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "ready-assessment/internal/common/errors"
)

// analyzeRequestSchema is checked against the raw payload before it enters
// the pipeline. Choice and free-text questions share one shape; dimension
// accepts a single code or a list of codes.
const analyzeRequestSchema = `{
	"type": "object",
	"required": ["questions", "answers"],
	"properties": {
		"user_info": {"type": "object"},
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string"},
					"stem": {"type": "string"},
					"type": {"type": "string"},
					"standard": {"type": "string"},
					"dimension": {
						"oneOf": [
							{"type": "string"},
							{"type": "array", "items": {"type": "string"}}
						]
					},
					"options": {
						"type": "array",
						"items": {
							"type": "object",
							"properties": {
								"key": {"type": "string"},
								"content": {"type": "string"},
								"score": {"type": "integer"}
							}
						}
					}
				}
			}
		},
		"answers": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		}
	}
}`

var compiledAnalyzeSchema = gojsonschema.NewStringLoader(analyzeRequestSchema)

// validateAnalyzeRequest checks the raw body against the request schema.
func validateAnalyzeRequest(body []byte) error {
	result, err := gojsonschema.Validate(compiledAnalyzeSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return apperrors.NewRequestValidationFailedError(err.Error())
	}
	if !result.Valid() {
		descriptions := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			descriptions[i] = desc.String()
		}
		return apperrors.NewRequestValidationFailedError(strings.Join(descriptions, "; "))
	}
	return nil
}
