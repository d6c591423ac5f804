// Package errors provides standardized error handling for the assessment pipeline.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeRequestValidationFailed ErrorCode = "REQUEST_VALIDATION_FAILED"

	ErrCodeExtractionFailed   ErrorCode = "EXTRACTION_FAILED"
	ErrCodeGenAITimeout       ErrorCode = "GENAI_TIMEOUT"
	ErrCodeGenAICallFailed    ErrorCode = "GENAI_CALL_FAILED"
	ErrCodeGenAIEmptyResponse ErrorCode = "GENAI_EMPTY_RESPONSE"

	ErrCodeReportGenerationFailed ErrorCode = "REPORT_GENERATION_FAILED"
)

// StandardError represents a structured application error. Recoverable
// reports whether a degraded result (the per-dimension fallback score) is
// acceptable for the failed operation; the report-generation stage never
// sets it.
type StandardError struct {
	Code        ErrorCode              `json:"code"`
	Message     string                 `json:"message"`
	Details     string                 `json:"details,omitempty"`
	Recoverable bool                   `json:"recoverable"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ==========================
// Error Constructors
// ==========================

// NewRequestValidationFailedError reports an inbound payload that did not
// match the analyze request schema.
func NewRequestValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestValidationFailed,
		Message:   "request validation failed",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewExtractionFailedError reports model output that could not be parsed
// as structured data even after repair.
func NewExtractionFailedError(err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeExtractionFailed,
		Message:     "no valid JSON payload in model output",
		Details:     err.Error(),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewGenAITimeoutError reports a text-generation call that exceeded its
// configured deadline.
func NewGenAITimeoutError(timeout time.Duration) *StandardError {
	return &StandardError{
		Code:        ErrCodeGenAITimeout,
		Message:     "text-generation call timed out",
		Details:     fmt.Sprintf("deadline: %s", timeout),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewGenAICallFailedError reports a transport or API-level failure.
func NewGenAICallFailedError(err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeGenAICallFailed,
		Message:     "text-generation call failed",
		Details:     err.Error(),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewGenAIEmptyResponseError reports a completion with no usable content.
func NewGenAIEmptyResponseError() *StandardError {
	return &StandardError{
		Code:        ErrCodeGenAIEmptyResponse,
		Message:     "text-generation response contained no completion",
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewReportGenerationFailedError wraps any failure of the final narrative
// call; it aborts the whole request.
func NewReportGenerationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportGenerationFailed,
		Message:   "report generation failed",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// Utility Functions
// ==========================

// AsStandard unwraps err into a *StandardError, or wraps it as a generic
// GenAI call failure when it is something else.
func AsStandard(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return NewGenAICallFailedError(err)
}

// CodeOf returns the error code carried by err, or empty for plain errors.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}
