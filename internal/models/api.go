// internal/models/api.go
package models

// AnalyzeRequest is the inbound payload of the analyze operation. The
// answers map is keyed by question ID; values are option keys for choice
// questions and free text for subjective ones.
type AnalyzeRequest struct {
	UserInfo  map[string]interface{} `json:"user_info"`
	Questions []Question             `json:"questions"`
	Answers   map[string]string      `json:"answers"`
}

// Username returns the user_info username, defaulting to "unknown".
func (r *AnalyzeRequest) Username() string {
	if name, ok := r.UserInfo["username"].(string); ok && name != "" {
		return name
	}
	return "unknown"
}

// APIResponse is the envelope every caller receives: code 200 on success,
// non-200 with a human-readable message and null data on failure.
type APIResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    Report `json:"data"`
}
