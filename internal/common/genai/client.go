// internal/common/genai/client.go

// Package genai wraps the OpenAI-compatible chat completions API used by
// the scoring and report stages.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ready-assessment/internal/common/config"
	apperrors "ready-assessment/internal/common/errors"
	commonhttp "ready-assessment/internal/common/http"
	"ready-assessment/internal/common/logger"
)

// systemInstruction pins every call to machine-readable output. The
// extractor still tolerates fenced blocks, but this keeps most responses
// directly parseable.
const systemInstruction = "You are an API that returns standard JSON. Make sure the response body is valid JSON."

// Client is the text-generation interface the pipeline stages depend on.
// Tests substitute a canned implementation.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// APIClient calls an OpenAI-compatible /chat/completions endpoint.
type APIClient struct {
	config     config.GenAIConfig
	httpClient *commonhttp.Client
	logger     logger.Logger
	timeout    time.Duration
}

func NewAPIClient(cfg config.GenAIConfig, httpClient *commonhttp.Client, log logger.Logger) *APIClient {
	return &APIClient{
		config:     cfg,
		httpClient: httpClient,
		logger:     log,
		timeout:    time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends one prompt and returns the raw completion text. The
// configured timeout bounds the whole call including response read.
func (c *APIClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", apperrors.NewGenAICallFailedError(err)
	}

	url := strings.TrimSuffix(c.config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.NewGenAICallFailedError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			c.logger.Error("Text-generation call timed out", map[string]interface{}{
				"model":   c.config.Model,
				"timeout": c.timeout.String(),
			})
			return "", apperrors.NewGenAITimeoutError(c.timeout)
		}
		return "", apperrors.NewGenAICallFailedError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", apperrors.NewGenAITimeoutError(c.timeout)
		}
		return "", apperrors.NewGenAICallFailedError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.NewGenAICallFailedError(
			fmt.Errorf("API returned status %d: %s", resp.StatusCode, truncate(string(respBody), 500)))
	}

	var completion chatResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", apperrors.NewGenAICallFailedError(fmt.Errorf("decoding completion: %w", err))
	}
	if completion.Error != nil {
		return "", apperrors.NewGenAICallFailedError(
			fmt.Errorf("API error: %s", completion.Error.Message))
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", apperrors.NewGenAIEmptyResponseError()
	}

	content := completion.Choices[0].Message.Content
	c.logger.Debug("Text-generation call completed", map[string]interface{}{
		"model":          c.config.Model,
		"duration_ms":    time.Since(start).Milliseconds(),
		"prompt_chars":   len(prompt),
		"response_chars": len(content),
	})
	return content, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
