package brain

import (
	"context"

	"google.golang.org/genai"
)

// geminiProvider implements Provider using the Google Gemini API.
type geminiProvider struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

func newGeminiProvider(ctx context.Context, apiKey, model string, maxTokens int64) (*geminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &geminiProvider{
		client:    client,
		model:     model,
		maxTokens: int32(maxTokens),
	}, nil
}

func (g *geminiProvider) Send(ctx context.Context, systemPrompt string, history []Message) (*Response, error) {
	var contents []*genai.Content
	for _, m := range history {
		role := m.Role
		if role == "assistant" {
			role = "model"
		}
		contents = append(contents, genai.NewContentFromText(m.Text, genai.Role(role)))
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, ""),
		MaxOutputTokens:   g.maxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, err
	}
	return &Response{Text: resp.Text()}, nil
}
