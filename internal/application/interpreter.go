package application

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/persona-relay/internal/domain"
)

type completionChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type completionResponse struct {
	ID      string             `json:"id"`
	Object  string             `json:"object"`
	Created int64              `json:"created"`
	Model   string             `json:"model"`
	Choices []completionChoice `json:"choices"`
	Usage   struct {
		PromptTokens     int64 `json:"prompt_tokens"`
		CompletionTokens int64 `json:"completion_tokens"`
		TotalTokens      int64 `json:"total_tokens"`
	} `json:"usage"`
}

// Interpretation is the part of a completion response the dispatcher uses.
type Interpretation struct {
	Content      string
	FinishReason string
	Model        string
	Usage        domain.Usage
}

type ResponseInterpreter struct {
	sentinel string
}

func NewResponseInterpreter(sentinel string) ResponseInterpreter {
	return ResponseInterpreter{sentinel: sentinel}
}

func (i ResponseInterpreter) Sentinel() string {
	return i.sentinel
}

// Interpret decodes a raw response body and extracts the first choice.
func (i ResponseInterpreter) Interpret(raw []byte) (Interpretation, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return Interpretation{}, fmt.Errorf("%w: empty body", domain.ErrParse)
	}

	var payload completionResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Interpretation{}, fmt.Errorf("%w: decode body: %w", domain.ErrParse, err)
	}
	if len(payload.Choices) == 0 {
		return Interpretation{}, fmt.Errorf("%w: response has no choices", domain.ErrParse)
	}

	first := payload.Choices[0]
	return Interpretation{
		Content:      first.Message.Content,
		FinishReason: first.FinishReason,
		Model:        payload.Model,
		Usage: domain.Usage{
			PromptTokens:     payload.Usage.PromptTokens,
			CompletionTokens: payload.Usage.CompletionTokens,
			TotalTokens:      payload.Usage.TotalTokens,
		},
	}, nil
}

// IsDenied is an exact substring match on the configured sentinel. An empty
// sentinel never matches.
func (i ResponseInterpreter) IsDenied(content string) bool {
	if i.sentinel == "" {
		return false
	}

	return strings.Contains(content, i.sentinel)
}

// SanitizeForDelivery strips double quotes. History keeps the raw content.
func (i ResponseInterpreter) SanitizeForDelivery(content string) string {
	return strings.ReplaceAll(content, `"`, "")
}
