// Package display turns pet events into lines on a Screen.
package display

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/message"

	"github.com/moorebrett0/termpet/internal/clock"
	"github.com/moorebrett0/termpet/internal/pet"
)

// Screen lines, by role.
const (
	LineStats        = 0
	LineInstructions = 1
	LineFeedback     = 2
	LineAction       = 3
	LineCursor       = 4
	LineFinal        = 6
	LineRemark       = 7
)

// Screen is a fixed set of addressable text lines.
type Screen interface {
	WriteLine(line int, text string)
	ClearLine(line int)
}

// Feedback timing defaults.
const (
	DefaultHold   = 2 * time.Second
	DefaultLinger = 3 * time.Second
)

// Renderer draws the stats, instructions, feedback, action progress and
// final message lines. It is a pet.Sink; Run must be running for feedback
// to appear.
type Renderer struct {
	screen  Screen
	printer *message.Printer
	emoji   string

	Hold   time.Duration // minimum time a feedback message stays up
	Linger time.Duration // extra time before an unreplaced message is cleared

	feedback chan string
}

// NewRenderer creates a renderer. emoji is shown next to the pet's name.
func NewRenderer(screen Screen, printer *message.Printer, emoji string) *Renderer {
	return &Renderer{
		screen:   screen,
		printer:  printer,
		emoji:    emoji,
		Hold:     DefaultHold,
		Linger:   DefaultLinger,
		feedback: make(chan string, 32),
	}
}

// Start draws the initial screen.
func (r *Renderer) Start(snap pet.Snapshot) {
	r.drawStats(snap)
	r.screen.WriteLine(LineInstructions, r.printer.Sprintf("screen.instructions"))
}

// Handle implements pet.Sink.
func (r *Renderer) Handle(e pet.Event) {
	switch e := e.(type) {
	case pet.StatsChanged:
		r.drawStats(e.Snapshot)
	case pet.Died:
		r.drawStats(e.Snapshot)
		r.Final(r.printer.Sprintf("pet.death."+e.Cause.String(), e.Snapshot.Name))
	case pet.Milestone:
		r.Say(r.printer.Sprintf("pet.milestone."+e.Stage.String(), r.nameOf(e)))
	case pet.FellAsleep:
		r.Say(r.printer.Sprintf("pet.sleep." + e.Cause.String()))
	case pet.WokeUp:
		// A grumpy wake was already announced by Grumbled.
		if !e.Grumpy {
			r.Say(r.printer.Sprintf("pet.wake." + e.Cause.String()))
		}
	case pet.Rejected:
		r.Say(r.printer.Sprintf(rejectionKey(e)))
	case pet.Grumbled:
		r.Say(r.printer.Sprintf("pet.grumble." + e.Action.String()))
	case pet.Pooped:
		r.Say(r.printer.Sprintf("pet.poop"))
	case pet.Overjoyed:
		r.Say(r.printer.Sprintf("pet.overjoyed"))
	}
}

func (r *Renderer) nameOf(e pet.Milestone) string {
	if e.Name == "" {
		return r.printer.Sprintf("pet.unnamed")
	}
	return e.Name
}

func rejectionKey(e pet.Rejected) string {
	if e.Reason == pet.ReasonDead {
		return "pet.reject." + e.Action.String() + ".dead"
	}
	return "pet.reject." + e.Reason.String()
}

// Say queues a feedback message. It never blocks; when the queue is full
// the message is dropped.
func (r *Renderer) Say(text string) {
	select {
	case r.feedback <- text:
	default:
		slog.Warn("display: feedback queue full, dropping message", "text", text)
	}
}

// Run owns the feedback line until ctx is cancelled. Messages are shown in
// order, each for at least Hold. A message not replaced within a further
// Linger is cleared.
func (r *Renderer) Run(ctx context.Context) {
	expire := time.NewTimer(time.Hour)
	expire.Stop()
	defer expire.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case text := <-r.feedback:
			expire.Stop()
			r.screen.ClearLine(LineFeedback)
			r.screen.WriteLine(LineFeedback, text)
			if !clock.Sleep(ctx, r.Hold) {
				return
			}
			expire.Reset(r.Linger)
		case <-expire.C:
			r.screen.ClearLine(LineFeedback)
		}
	}
}

// ShowAction draws frame n of an action's progress: the action text
// followed by n dots.
func (r *Renderer) ShowAction(a pet.Action, n int) {
	text := r.printer.Sprintf("screen.action." + a.String())
	text += strings.Repeat(" .", n)
	r.screen.WriteLine(LineAction, text)
}

// ClearAction blanks the action line.
func (r *Renderer) ClearAction() {
	r.screen.ClearLine(LineAction)
}

// Final writes the final message line.
func (r *Renderer) Final(text string) {
	r.screen.ClearLine(LineFinal)
	r.screen.WriteLine(LineFinal, text)
}

// Remark writes an epitaph under the final message.
func (r *Renderer) Remark(text string) {
	if text == "" {
		return
	}
	r.screen.ClearLine(LineRemark)
	r.screen.WriteLine(LineRemark, r.printer.Sprintf("screen.epitaph", text))
}

func (r *Renderer) drawStats(s pet.Snapshot) {
	status := s.Mood
	if s.Mode == pet.Asleep && s.Alive {
		status = r.printer.Sprintf("screen.asleep")
	}
	line := r.printer.Sprintf("screen.stats",
		s.Name, r.emoji,
		s.Age, pet.AgeMax,
		s.Food, pet.FoodMax,
		s.Energy, pet.EnergyMax,
		s.Hygiene, pet.HygieneMax,
		s.Happiness, pet.HappinessMax,
		status,
	)
	r.screen.ClearLine(LineStats)
	r.screen.WriteLine(LineStats, line)
}
