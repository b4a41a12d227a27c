// Package openai posts chat completion requests to an OpenAI-compatible
// endpoint and hands back the raw response body.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/bnema/persona-relay/internal/ports"
)

const (
	maxResponseBytes     = 4 << 20
	maxErrorExcerptBytes = 512
	defaultTimeout       = 60 * time.Second
)

var errMissingAPIKey = errors.New("api key is required")

type Transport struct {
	URL            string
	APIKey         string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.CompletionTransport = Transport{}

type chatRequest struct {
	Model            string        `json:"model"`
	Messages         []chatMessage `json:"messages"`
	Temperature      float64       `json:"temperature"`
	PresencePenalty  float64       `json:"presence_penalty"`
	FrequencyPenalty float64       `json:"frequency_penalty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

func (t Transport) Complete(ctx context.Context, request domain.CompletionRequest) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	endpoint, err := validateURL(t.URL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(t.APIKey) == "" {
		return nil, errMissingAPIKey
	}

	body, err := json.Marshal(toWire(request))
	if err != nil {
		return nil, fmt.Errorf("encode completion request: %w", err)
	}

	requestCtx, cancel := t.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.APIKey)

	resp, err := t.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send completion request: %w", domain.ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransport, describeErrorResponse(resp))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read completion response: %w", domain.ErrTransport, err)
	}

	return raw, nil
}

func toWire(request domain.CompletionRequest) chatRequest {
	messages := make([]chatMessage, 0, len(request.Messages))
	for _, message := range request.Messages {
		messages = append(messages, chatMessage{Role: string(message.Role), Content: message.Content})
	}

	return chatRequest{
		Model:            request.Model,
		Messages:         messages,
		Temperature:      request.Temperature,
		PresencePenalty:  request.PresencePenalty,
		FrequencyPenalty: request.FrequencyPenalty,
	}
}

func (t Transport) httpClient() *http.Client {
	if t.HTTPClient != nil {
		return t.HTTPClient
	}
	return http.DefaultClient
}

func (t Transport) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := t.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

// describeErrorResponse prefers the API's own error message and falls back
// to a bounded excerpt of the body.
func describeErrorResponse(resp *http.Response) string {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorExcerptBytes))

	var apiErr apiErrorResponse
	if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error.Message != "" {
		if apiErr.Error.Type != "" {
			return fmt.Sprintf("status %d: %s: %s", resp.StatusCode, apiErr.Error.Type, apiErr.Error.Message)
		}
		return fmt.Sprintf("status %d: %s", resp.StatusCode, apiErr.Error.Message)
	}

	excerpt := strings.TrimSpace(string(data))
	if excerpt == "" {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}

	return fmt.Sprintf("status %d: %s", resp.StatusCode, excerpt)
}

func validateURL(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", errors.New("api url is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api url host is required")
	}

	return parsed.String(), nil
}
