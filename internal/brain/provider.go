package brain

import "context"

// Provider abstracts the AI API (Claude, Gemini, etc.).
type Provider interface {
	Send(ctx context.Context, systemPrompt string, history []Message) (*Response, error)
}

// Message is a provider-agnostic conversation turn.
type Message struct {
	Role string // "user", "assistant"
	Text string
}

// Response is what a provider returns from a single Send() call.
type Response struct {
	Text string
}
