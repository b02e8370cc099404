package prompt

import (
	"fmt"
	"strings"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/entity"
)

const (
	// EmptyContextMarker stands in for the context body when no packet is in
	// scope.
	EmptyContextMarker = "No packet context available."

	restrictiveInstruction = "Reason only from the provided packet context. If unknown, say it is outside focus."
	permissiveInstruction  = "Use provided packet context first, then general reasoning as needed."
)

// Builder assembles the synthetic prompt sent to (or simulated for) the
// generation step: a system instruction, the focused packet context, then the
// raw user prompt, in that fixed order.
type Builder struct {
	packets     []*entity.Packet
	userPrompt  string
	restrictive bool
}

// NewBuilder creates a prompt builder. restrictive selects the instruction
// that forbids reasoning outside the provided context; it is set when focus
// is narrowed to a single packet or when the caller forces context-only
// reasoning (the summarize action).
func NewBuilder(packets []*entity.Packet, userPrompt string, restrictive bool) *Builder {
	return &Builder{
		packets:     packets,
		userPrompt:  userPrompt,
		restrictive: restrictive,
	}
}

// Build renders the full synthetic prompt.
func (b *Builder) Build() string {
	var prompt strings.Builder

	b.writeInstruction(&prompt)
	b.writeContext(&prompt)
	b.writeUserPrompt(&prompt)

	return prompt.String()
}

func (b *Builder) writeInstruction(prompt *strings.Builder) {
	if b.restrictive {
		prompt.WriteString(restrictiveInstruction)
	} else {
		prompt.WriteString(permissiveInstruction)
	}
	prompt.WriteString("\n\n")
}

func (b *Builder) writeContext(prompt *strings.Builder) {
	prompt.WriteString("Context:\n")
	if len(b.packets) == 0 {
		prompt.WriteString(EmptyContextMarker)
	} else {
		for i, p := range b.packets {
			if i > 0 {
				prompt.WriteString("\n\n")
			}
			prompt.WriteString(fmt.Sprintf("Packet %d: %s\n%s", i+1, p.Title, p.Content))
		}
	}
	prompt.WriteString("\n\n")
}

func (b *Builder) writeUserPrompt(prompt *strings.Builder) {
	prompt.WriteString("User:\n")
	prompt.WriteString(b.userPrompt)
}
