package announce

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Bot wraps the Discord session used for announcements. It only posts;
// it never reads the channel.
type Bot struct {
	session *discordgo.Session
}

// NewBot creates a Discord bot (does not connect yet).
func NewBot(token string) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("invalid bot token: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	return &Bot{session: session}, nil
}

// Open connects to Discord.
func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord: open session: %w", err)
	}
	if b.session.State != nil && b.session.State.User != nil {
		slog.Info("discord: connected", "user", b.session.State.User.Username)
	}
	return nil
}

// Close disconnects from Discord.
func (b *Bot) Close() error {
	slog.Info("discord: shutting down")
	return b.session.Close()
}

// SendMessage sends a text message to a channel.
func (b *Bot) SendMessage(ctx context.Context, channelID, text string) error {
	if text == "" {
		return nil
	}
	_, err := b.session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx))
	return err
}

// SendEmbed sends an embed to a channel.
func (b *Bot) SendEmbed(ctx context.Context, channelID string, embed *discordgo.MessageEmbed) error {
	_, err := b.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx))
	return err
}

// UpdatePresence sets the bot's Discord status based on pet mood.
func (b *Bot) UpdatePresence(mood string) error {
	status, activity := moodToPresence(mood)
	return b.session.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: status,
		Activities: []*discordgo.Activity{
			{
				Name: activity,
				Type: discordgo.ActivityTypeCustom,
			},
		},
	})
}

func moodToPresence(mood string) (status, activity string) {
	switch mood {
	case "happy":
		return "online", "feeling great!"
	case "content":
		return "online", "just vibing"
	case "bored":
		return "idle", "anyone there?"
	case "hungry":
		return "idle", "getting hungry..."
	case "sleepy", "sleeping":
		return "idle", "zzz"
	case "sick":
		return "dnd", "needs a bath..."
	case "dead":
		return "invisible", ""
	default:
		return "online", "just vibing"
	}
}
