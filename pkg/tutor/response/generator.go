package response

import (
	"context"
	"fmt"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/entity"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/pkg/logger"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/gemini"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/tutor/prompt"
)

// Kind discriminates how a response was produced so the presentation layer
// never has to string-match failure text.
type Kind string

const (
	KindSimulated Kind = "simulated"
	KindLive      Kind = "live"
	KindFailed    Kind = "failed"
)

// Result is the total outcome of a chat turn. Every code path yields a
// displayable Text; failures are carried as a Kind, never as an error.
type Result struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

const simulatedEchoLimit = 80

// Generator orchestrates a single chat-turn response: simulated when no API
// key is configured, one live completion call otherwise, with a typed failure
// result on any transport or payload error. No retry; the user re-triggering
// the action is the retry mechanism.
type Generator struct {
	client *gemini.Client
	model  string
	logger logger.ILogger
}

func NewGenerator(client *gemini.Client, model string, log logger.ILogger) *Generator {
	return &Generator{
		client: client,
		model:  model,
		logger: log,
	}
}

// Generate builds the synthetic prompt from the focused packets and produces
// the tutor's answer. restrictive selects the context-only instruction (set
// when focus names a single packet or the caller forces grounded reasoning).
func (g *Generator) Generate(
	ctx context.Context,
	promptText string,
	restrictive bool,
	apiKey string,
	focused []*entity.Packet,
) Result {
	synthetic := prompt.NewBuilder(focused, promptText, restrictive).Build()

	if apiKey == "" {
		return Result{
			Kind: KindSimulated,
			Text: simulatedResponse(promptText),
		}
	}

	text, err := g.client.GenerateContent(ctx, apiKey, g.model, synthetic)
	if err != nil {
		g.logger.Warn("response", "live generation failed, reporting local tutor fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return Result{
			Kind: KindFailed,
			Text: fmt.Sprintf("Live model failed (%v). Falling back to local tutor mode.", err),
		}
	}
	if text == "" {
		return Result{Kind: KindLive, Text: "No response."}
	}

	return Result{Kind: KindLive, Text: text}
}

func simulatedResponse(promptText string) string {
	echo := promptText
	if runes := []rune(echo); len(runes) > simulatedEchoLimit {
		echo = string(runes[:simulatedEchoLimit])
	}
	return fmt.Sprintf(
		"Simulated OmniTutor Response:\n- I used your focused packet context.\n- Key insight: %s...\n- Add an API key in Settings to use Gemini live responses.",
		echo,
	)
}
