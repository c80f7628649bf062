// Package announce posts the pet's life events to a Discord channel.
package announce

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/moorebrett0/termpet/internal/pet"
	"github.com/moorebrett0/termpet/internal/species"
)

// Sender can send messages and update presence.
type Sender interface {
	SendMessage(ctx context.Context, channelID, text string) error
	SendEmbed(ctx context.Context, channelID string, embed *discordgo.MessageEmbed) error
	UpdatePresence(mood string) error
}

type post struct {
	text     string
	embed    *discordgo.MessageEmbed
	presence string
}

// Announcer turns pet events into Discord posts. Handle queues posts
// without blocking; Run sends them.
type Announcer struct {
	sender    Sender
	channelID string
	name      string
	species   *species.Species
	queue     chan post

	// Only touched from Handle, which runs on the pet's goroutine.
	lastMood string
}

// New creates an announcer for the named pet.
func New(sender Sender, channelID, name string, sp *species.Species, queueSize int) *Announcer {
	if queueSize <= 0 {
		queueSize = 32
	}
	return &Announcer{
		sender:    sender,
		channelID: channelID,
		name:      name,
		species:   sp,
		queue:     make(chan post, queueSize),
	}
}

// Hatched announces the start of a game.
func (a *Announcer) Hatched() {
	a.enqueue(post{text: TemplateHatch(a.name, a.species)})
}

// Handle implements pet.Sink.
func (a *Announcer) Handle(e pet.Event) {
	switch e := e.(type) {
	case pet.StatsChanged:
		if e.Snapshot.Mood != a.lastMood {
			a.lastMood = e.Snapshot.Mood
			a.enqueue(post{presence: e.Snapshot.Mood})
		}
	case pet.Milestone:
		a.enqueue(post{text: TemplateMilestone(a.name, a.species, e)})
	case pet.FellAsleep:
		if e.Cause != pet.Bedtime {
			a.enqueue(post{text: TemplateForcedSleep(a.name, a.species, e.Cause)})
		}
	case pet.Died:
		a.enqueue(post{embed: DeathEmbed(e.Snapshot, a.species, "")})
	}
}

// Epitaph posts the pet's last words. It is ignored before death.
func (a *Announcer) Epitaph(snap pet.Snapshot, text string) {
	if snap.Alive || text == "" {
		return
	}
	a.enqueue(post{text: "\U0001FAA6 " + a.name + ": _" + text + "_"})
}

func (a *Announcer) enqueue(p post) {
	select {
	case a.queue <- p:
	default:
		slog.Warn("announce: queue full, dropping post")
	}
}

// Run sends queued posts until ctx is cancelled.
func (a *Announcer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case p := <-a.queue:
			a.send(ctx, p)
		}
	}
}

// Flush sends whatever is still queued, giving up when ctx ends.
func (a *Announcer) Flush(ctx context.Context) {
	for {
		select {
		case p := <-a.queue:
			if ctx.Err() != nil {
				return
			}
			a.send(ctx, p)
		default:
			return
		}
	}
}

func (a *Announcer) send(ctx context.Context, p post) {
	var err error
	switch {
	case p.presence != "":
		err = a.sender.UpdatePresence(p.presence)
	case p.embed != nil:
		err = a.sender.SendEmbed(ctx, a.channelID, p.embed)
	default:
		err = a.sender.SendMessage(ctx, a.channelID, p.text)
	}
	if err != nil {
		slog.Error("announce: send failed", "err", err)
	}
}
