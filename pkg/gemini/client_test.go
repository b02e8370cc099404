package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.URL.Query().Get("key"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestGenerateContentSuccess(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{
		"candidates": [{"content": {"parts": [{"text": "an answer"}], "role": "model"}}]
	}`)
	defer srv.Close()

	client := NewClient(srv.URL)
	got, err := client.GenerateContent(context.Background(), "test-key", "gemini-2.5-flash", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "an answer", got)
}

func TestGenerateContentSendsUserMessage(t *testing.T) {
	var captured ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "ok"}]}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.GenerateContent(context.Background(), "k", "m", "the synthetic prompt")
	require.NoError(t, err)

	require.Len(t, captured.Contents, 1)
	assert.Equal(t, ChatMessageRoleUser, captured.Contents[0].Role)
	require.Len(t, captured.Contents[0].Parts, 1)
	assert.Equal(t, "the synthetic prompt", captured.Contents[0].Parts[0].Text)
}

func TestGenerateContentNonOKStatus(t *testing.T) {
	srv := newTestServer(t, http.StatusTooManyRequests, `{"error": "quota"}`)
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.GenerateContent(context.Background(), "k", "m", "p")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateContentMalformedBody(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `not json at all`)
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.GenerateContent(context.Background(), "k", "m", "p")
	assert.Error(t, err)
}

func TestGenerateContentEmptyCandidates(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"candidates": []}`)
	defer srv.Close()

	client := NewClient(srv.URL)
	got, err := client.GenerateContent(context.Background(), "k", "m", "p")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "json fence", raw: "```json\n[1,2]\n```", want: "[1,2]"},
		{name: "bare fence", raw: "```\n[1,2]\n```", want: "[1,2]"},
		{name: "no fence", raw: "  [1,2]  ", want: "[1,2]"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.raw))
		})
	}
}
