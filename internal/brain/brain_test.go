package brain

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/moorebrett0/termpet/internal/pet"
)

type fakeProvider struct {
	text   string
	err    error
	block  bool
	prompt string
	calls  int
}

func (f *fakeProvider) Send(ctx context.Context, systemPrompt string, history []Message) (*Response, error) {
	f.calls++
	f.prompt = systemPrompt
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &Response{Text: f.text}, nil
}

func deadPet() pet.Snapshot {
	return pet.Snapshot{
		Name: "Mochi", SpeciesID: "crab", Death: pet.Starvation,
		Age: 42, Stage: pet.Adult, Hygiene: 2, Happiness: 30,
	}
}

func TestEpitaphTrimsToOneLine(t *testing.T) {
	p := &fakeProvider{text: "  \"Snapped at hunger, lost.\"\nSecond line\n"}
	b := NewWithProvider(p, Config{RateLimit: 5, RateWindow: time.Minute})

	got, err := b.Epitaph(context.Background(), deadPet())
	if err != nil {
		t.Fatalf("epitaph: %v", err)
	}
	if got != "Snapped at hunger, lost." {
		t.Fatalf("epitaph = %q", got)
	}
	for _, want := range []string{"Mochi", "Crab", "Cause of death: hunger", "Age: 42/100", "Life stage: adult"} {
		if !strings.Contains(p.prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestEpitaphErrors(t *testing.T) {
	t.Run("provider error", func(t *testing.T) {
		b := NewWithProvider(&fakeProvider{err: errors.New("boom")}, Config{})
		if _, err := b.Epitaph(context.Background(), deadPet()); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("empty text", func(t *testing.T) {
		b := NewWithProvider(&fakeProvider{text: "   "}, Config{})
		if _, err := b.Epitaph(context.Background(), deadPet()); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("timeout", func(t *testing.T) {
		b := NewWithProvider(&fakeProvider{block: true}, Config{Timeout: 10 * time.Millisecond})
		_, err := b.Epitaph(context.Background(), deadPet())
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("err = %v, want deadline exceeded", err)
		}
	})
}

func TestRateLimit(t *testing.T) {
	p := &fakeProvider{text: "bye"}
	b := NewWithProvider(p, Config{RateLimit: 2, RateWindow: time.Hour})

	for i := 0; i < 2; i++ {
		if _, err := b.Epitaph(context.Background(), deadPet()); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if _, err := b.Epitaph(context.Background(), deadPet()); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("third call err = %v, want ErrRateLimited", err)
	}
	if p.calls != 2 {
		t.Fatalf("provider called %d times, want 2", p.calls)
	}
}

func TestNewWithoutKeysIsNil(t *testing.T) {
	if b := New(context.Background(), Config{}); b != nil {
		t.Fatal("expected nil brain without API keys")
	}
	if b := New(context.Background(), Config{Provider: "gemini", ClaudeAPIKey: "k"}); b != nil {
		t.Fatal("expected nil brain when forced provider has no key")
	}
}
