package announce

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/moorebrett0/termpet/internal/pet"
	"github.com/moorebrett0/termpet/internal/species"
)

// progressBar renders a visual bar like ████████░░ 40/50
func progressBar(value, max, width int) string {
	filled := 0
	if max > 0 {
		filled = value * width / max
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled
	return fmt.Sprintf("%s%s %d/%d", strings.Repeat("█", filled), strings.Repeat("░", empty), value, max)
}

// moodColor returns a Discord embed color for the mood.
func moodColor(mood string) int {
	switch mood {
	case "happy":
		return 0x57F287 // green
	case "content":
		return 0x5865F2 // blurple
	case "bored":
		return 0xFEE75C // yellow
	case "hungry":
		return 0xEB459E // fuchsia
	case "sleepy", "sleeping":
		return 0x99AAB5 // grey
	case "sick":
		return 0xED4245 // red
	case "dead":
		return 0x23272A // dark
	default:
		return 0x5865F2
	}
}

var deathReasons = map[pet.DeathCause]string{
	pet.OldAge:      "of old age. What a life!",
	pet.Starvation:  "of hunger.",
	pet.PoorHygiene: "of bad hygiene.",
	pet.BrokenHeart: "of a broken heart.",
}

// DeathEmbed builds the obituary posted when the pet dies.
func DeathEmbed(snap pet.Snapshot, sp *species.Species, epitaph string) *discordgo.MessageEmbed {
	stats := fmt.Sprintf(
		"age       %s\nfood      %s\nenergy    %s\nhygiene   %s\nhappiness %s",
		progressBar(snap.Age, pet.AgeMax, 10),
		progressBar(snap.Food, pet.FoodMax, 10),
		progressBar(snap.Energy, pet.EnergyMax, 10),
		progressBar(snap.Hygiene, pet.HygieneMax, 10),
		progressBar(snap.Happiness, pet.HappinessMax, 10),
	)

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("\U0001F480 %s %s", sp.Emoji, snap.Name),
		Description: fmt.Sprintf("%s %s and died %s", snap.Name, sp.Verbs.Distress, deathReasons[snap.Death]),
		Color:       moodColor("dead"),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Final stats", Value: "```\n" + stats + "\n```", Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("life stage: %s", snap.Stage),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if epitaph != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Epitaph", Value: "_" + epitaph + "_"})
	}
	return embed
}

func TemplateHatch(name string, sp *species.Species) string {
	return fmt.Sprintf("\U0001F95A %s %s %s.", sp.Emoji, name, sp.Verbs.Hatch)
}

func TemplateMilestone(name string, sp *species.Species, m pet.Milestone) string {
	return fmt.Sprintf("\U0001F389 %s %s is now %s %s! %s %s.",
		sp.Emoji, name, article(m.Stage), stageName(m.Stage), name, sp.Verbs.Grow)
}

func TemplateForcedSleep(name string, sp *species.Species, cause pet.SleepCause) string {
	why := "ran out of energy"
	if cause == pet.Overfed {
		why = "ate too much"
	}
	return fmt.Sprintf("\U0001F4A4 %s %s %s and %s.", sp.Emoji, name, why, sp.Verbs.Sleep)
}

func stageName(s pet.Stage) string {
	return strings.ReplaceAll(s.String(), "_", "-")
}

func article(s pet.Stage) string {
	if s == pet.Adult || s == pet.Elder {
		return "an"
	}
	return "a"
}
