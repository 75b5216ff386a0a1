package agent

import (
	"context"
	"fmt"
	"strings"
)

// topicNamingPrompt constrains the naming model to a single short title.
const topicNamingPrompt = "Name the conversation topic for the user's message. " +
	"Answer with the title only: at most four words, no quotes, no punctuation at the end."

// Namer generates forum topic titles through the model service. It
// satisfies the router's TopicNamer interface.
type Namer struct {
	llm LLMClient
}

// NewNamer creates a Namer over an LLM client.
func NewNamer(llm LLMClient) *Namer {
	return &Namer{llm: llm}
}

// NameTopic asks modelID for a title for the given first message. Tool
// calls are not offered; only text chunks contribute to the answer.
func (n *Namer) NameTopic(ctx context.Context, modelID, text string) (string, error) {
	ch, err := n.llm.Generate(ctx, &GenerateInput{
		ModelID:      modelID,
		SystemPrompt: topicNamingPrompt,
		Messages:     []ConversationMessage{{Role: "user", Content: text}},
	})
	if err != nil {
		return "", fmt.Errorf("topic naming call failed: %w", err)
	}

	var title strings.Builder
	for chunk := range ch {
		switch c := chunk.(type) {
		case *TextChunk:
			title.WriteString(c.Content)
		case *ErrorChunk:
			return "", fmt.Errorf("topic naming stream error: %s", c.Message)
		}
	}
	return strings.TrimSpace(title.String()), nil
}
