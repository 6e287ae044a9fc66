// Package ai wraps the external generative-AI service that answers
// questions about video content.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrMissingCredentials marks failures caused by absent or rejected service
// credentials, so callers can show an actionable message instead of a
// generic one.
var ErrMissingCredentials = errors.New("ai: service credentials unavailable")

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one exchange in a question-answering conversation.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Assistant answers a question about a video, given the conversation so far.
type Assistant interface {
	AnswerQuestion(ctx context.Context, videoRef, question string, history []Turn) (string, error)
}

// Client talks to the answering service over HTTP.
type Client struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

func NewClient(endpoint, model, apiKey string) *Client {
	return &Client{
		endpoint:   endpoint,
		model:      model,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type answerRequest struct {
	Model    string `json:"model"`
	VideoURI string `json:"videoUri"`
	Prompt   string `json:"prompt"`
	History  []Turn `json:"history,omitempty"`
}

type answerResponse struct {
	Answer string `json:"answer"`
	Error  string `json:"error"`
}

// AnswerQuestion forwards the video reference and question to the service.
// Credential problems surface as ErrMissingCredentials; everything else is
// a generic failure.
func (c *Client) AnswerQuestion(ctx context.Context, videoRef, question string, history []Turn) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingCredentials
	}

	payload := answerRequest{
		Model:    c.model,
		VideoURI: videoRef,
		Prompt:   fmt.Sprintf("Watch the provided video, then answer this question based on the video content: %s", question),
		History:  history,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("ai: reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("ai: service rejected credentials (status %d): %w", resp.StatusCode, ErrMissingCredentials)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("ai: service returned status %d: %s", resp.StatusCode, truncate(raw, 200))
	}

	var parsed answerResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("ai: decoding response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("ai: %s", parsed.Error)
	}
	return parsed.Answer, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
