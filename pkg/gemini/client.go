package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type ChatParts struct {
	Text string `json:"text"`
}

type ChatContent struct {
	Parts []*ChatParts `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type ChatRequest struct {
	Contents []*ChatContent `json:"contents"`
}

type ChatCandidate struct {
	Content *ChatContent `json:"content"`
}

type ChatResponse struct {
	Candidates []*ChatCandidate `json:"candidates"`
}

const ChatMessageRoleUser = "user"

// Client talks to the Gemini generateContent endpoint. The API key is passed
// per call because it lives in session state, not in server config.
type Client struct {
	BaseURL string
	Client  *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// GenerateContent issues exactly one completion request carrying the prompt
// as a single user-role message. Any non-OK status is an error. On success it
// returns the first candidate's first text part; a success payload with no
// candidates or parts yields an empty string and no error, which callers map
// to their own "no response" handling.
func (c *Client) GenerateContent(ctx context.Context, apiKey, model, prompt string) (string, error) {
	payload := ChatRequest{
		Contents: []*ChatContent{
			{
				Parts: []*ChatParts{{Text: prompt}},
				Role:  ChatMessageRoleUser,
			},
		},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		c.BaseURL,
		model,
		url.QueryEscape(apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini error: status %d", res.StatusCode)
	}

	var chatRes ChatResponse
	if err := json.Unmarshal(resBody, &chatRes); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(chatRes.Candidates) == 0 ||
		chatRes.Candidates[0].Content == nil ||
		len(chatRes.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	return chatRes.Candidates[0].Content.Parts[0].Text, nil
}

// StripCodeFence removes a surrounding markdown code fence from a model
// response so the remainder can be parsed structurally.
func StripCodeFence(raw string) string {
	b := []byte(raw)
	b = bytes.TrimSpace(b)
	b = bytes.TrimPrefix(b, []byte("```json"))
	b = bytes.TrimPrefix(b, []byte("```"))
	b = bytes.TrimSuffix(b, []byte("```"))
	b = bytes.TrimSpace(b)
	return string(b)
}
