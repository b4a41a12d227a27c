package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() domain.CompletionRequest {
	return domain.CompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []domain.Message{
			domain.NewUserMessage("Who goes there?"),
			domain.NewAssistantMessage("A friend."),
			domain.NewUserMessage("Prove it."),
		},
		Temperature:      0.7,
		PresencePenalty:  0.1,
		FrequencyPenalty: -0.2,
	}
}

func TestTransportCompletePostsWireRequest(t *testing.T) {
	t.Parallel()

	const responseBody = `{"choices":[{"message":{"role":"assistant","content":"Fine."}}]}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o-mini", body["model"])
		assert.InDelta(t, 0.7, body["temperature"], 1e-9)
		assert.InDelta(t, 0.1, body["presence_penalty"], 1e-9)
		assert.InDelta(t, -0.2, body["frequency_penalty"], 1e-9)
		assert.Equal(t, []any{
			map[string]any{"role": "user", "content": "Who goes there?"},
			map[string]any{"role": "assistant", "content": "A friend."},
			map[string]any{"role": "user", "content": "Prove it."},
		}, body["messages"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, responseBody)
	}))
	defer server.Close()

	transport := Transport{URL: server.URL + "/v1/chat/completions", APIKey: "sk-test", HTTPClient: server.Client()}

	raw, err := transport.Complete(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.JSONEq(t, responseBody, string(raw))
}

func TestTransportNonSuccessStatusIsTransportError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "api error payload",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`,
			wantMsg: "status 401: invalid_request_error: Incorrect API key provided",
		},
		{
			name:    "plain text body",
			status:  http.StatusBadGateway,
			body:    "upstream unavailable",
			wantMsg: "status 502: upstream unavailable",
		},
		{
			name:    "empty body",
			status:  http.StatusTooManyRequests,
			wantMsg: "status 429",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer server.Close()

			_, err := Transport{URL: server.URL, APIKey: "sk-test"}.Complete(context.Background(), sampleRequest())
			require.ErrorIs(t, err, domain.ErrTransport)
			assert.ErrorContains(t, err, tc.wantMsg)
		})
	}
}

func TestTransportErrorExcerptIsBounded(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, strings.Repeat("x", 10_000))
	}))
	defer server.Close()

	_, err := Transport{URL: server.URL, APIKey: "sk-test"}.Complete(context.Background(), sampleRequest())
	require.ErrorIs(t, err, domain.ErrTransport)
	assert.Less(t, len(err.Error()), maxErrorExcerptBytes+100)
}

func TestTransportNetworkFailureIsTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := Transport{URL: url, APIKey: "sk-test"}.Complete(context.Background(), sampleRequest())
	require.ErrorIs(t, err, domain.ErrTransport)
}

func TestTransportRequestTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	transport := Transport{URL: server.URL, APIKey: "sk-test", RequestTimeout: 20 * time.Millisecond}

	_, err := transport.Complete(context.Background(), sampleRequest())
	require.ErrorIs(t, err, domain.ErrTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTransportRejectsInvalidConfiguration(t *testing.T) {
	t.Parallel()

	_, err := Transport{URL: "", APIKey: "sk-test"}.Complete(context.Background(), sampleRequest())
	assert.ErrorContains(t, err, "api url is required")

	_, err = Transport{URL: "ftp://example.com", APIKey: "sk-test"}.Complete(context.Background(), sampleRequest())
	assert.ErrorContains(t, err, "must use http or https")

	_, err = Transport{URL: "https://api.example.com/v1/chat/completions"}.Complete(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, errMissingAPIKey)
}

func TestTransportCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Transport{URL: "https://api.example.com", APIKey: "sk-test"}.Complete(ctx, sampleRequest())
	require.ErrorIs(t, err, context.Canceled)
}
