package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/entity"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/pkg/logger"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/gemini"
)

const (
	maxSourcePackets = 6
	maxItems         = 3
	optionCount      = 4
)

var fallbackDistractors = []string{
	"Unrelated interpretation",
	"Opposite claim",
	"Insufficient context",
}

// remoteQuizItem is the wire shape the model is asked to return.
type remoteQuizItem struct {
	Q           string   `json:"q"`
	Options     []string `json:"options"`
	AnswerIndex *int     `json:"answerIndex"`
}

// Generator builds the quiz set: one structured remote request when an API
// key is present, with a deterministic sentence-extraction fallback on any
// transport, parse, or shape failure. The fallback is what guarantees the
// quiz surface always has something to render.
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

// Generate returns the quiz items for the given packet store. It never
// errors: empty stores yield a single placeholder item, and every remote
// failure degrades to the fallback quiz. Remote results are all-or-nothing;
// one malformed item rejects the whole response.
func (g *Generator) Generate(ctx context.Context, packets []*entity.Packet, apiKey string) []*entity.QuizItem {
	source := packets
	if len(source) > maxSourcePackets {
		source = source[:maxSourcePackets]
	}
	if len(source) == 0 {
		return []*entity.QuizItem{
			{
				Question:     "No packets available. Add one to generate a quiz.",
				Options:      []string{"OK"},
				CorrectIndex: 0,
			},
		}
	}

	if apiKey != "" {
		items, err := g.generateRemote(ctx, source, apiKey)
		if err == nil {
			return items
		}
		g.logger.Warn("quiz", "remote quiz rejected, using deterministic fallback", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return fallbackQuiz(source)
}

func (g *Generator) generateRemote(ctx context.Context, source []*entity.Packet, apiKey string) ([]*entity.QuizItem, error) {
	contents := make([]string, len(source))
	for i, p := range source {
		contents[i] = p.Content
	}
	promptText := fmt.Sprintf(
		"Create exactly %d multiple-choice questions from these notes. Return pure JSON array with keys q, options (%d), answerIndex. Notes: %s",
		maxItems,
		optionCount,
		strings.Join(contents, " "),
	)

	raw, err := g.client.GenerateContent(ctx, apiKey, g.model, promptText)
	if err != nil {
		return nil, err
	}

	return parseRemoteQuiz(raw)
}

func parseRemoteQuiz(raw string) ([]*entity.QuizItem, error) {
	cleaned := gemini.StripCodeFence(raw)

	var parsed []remoteQuizItem
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("quiz response has no items")
	}

	items := make([]*entity.QuizItem, 0, len(parsed))
	for i, item := range parsed {
		if strings.TrimSpace(item.Q) == "" {
			return nil, fmt.Errorf("item %d: empty question", i)
		}
		if len(item.Options) != optionCount {
			return nil, fmt.Errorf("item %d: expected %d options, got %d", i, optionCount, len(item.Options))
		}
		if item.AnswerIndex == nil {
			return nil, fmt.Errorf("item %d: missing answerIndex", i)
		}
		if *item.AnswerIndex < 0 || *item.AnswerIndex >= optionCount {
			return nil, fmt.Errorf("item %d: answerIndex %d out of bounds", i, *item.AnswerIndex)
		}
		items = append(items, &entity.QuizItem{
			Question:     item.Q,
			Options:      item.Options,
			CorrectIndex: *item.AnswerIndex,
		})
		if len(items) == maxItems {
			break
		}
	}

	return items, nil
}

// fallbackQuiz extracts the first non-empty sentence of each source packet as
// the correct option, always at index zero, padded with fixed distractors.
func fallbackQuiz(source []*entity.Packet) []*entity.QuizItem {
	if len(source) > maxItems {
		source = source[:maxItems]
	}

	items := make([]*entity.QuizItem, len(source))
	for i, p := range source {
		fact := firstSentence(p.Content)
		items[i] = &entity.QuizItem{
			Question:     fmt.Sprintf("Packet %d: Which best captures this idea?", i+1),
			Options:      append([]string{fact}, fallbackDistractors...),
			CorrectIndex: 0,
		}
	}
	return items
}

func firstSentence(content string) string {
	for _, part := range strings.Split(content, ".") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			return trimmed
		}
	}
	return content
}
