package brain

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// claudeProvider implements Provider using the Anthropic Claude API.
type claudeProvider struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

func newClaudeProvider(apiKey, model string, maxTokens int64) *claudeProvider {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &claudeProvider{
		client:    &client,
		model:     anthropic.Model(model),
		maxTokens: maxTokens,
	}
}

func (c *claudeProvider) Send(ctx context.Context, systemPrompt string, history []Message) (*Response, error) {
	var msgs []anthropic.MessageParam
	for _, m := range history {
		switch m.Role {
		case "user":
			msgs = append(msgs, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Text)))
		case "assistant":
			msgs = append(msgs, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Text)))
		}
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:  msgs,
	})
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.AsText().Text)
		}
	}
	return &Response{Text: text.String()}, nil
}
