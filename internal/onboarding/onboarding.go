package onboarding

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/moorebrett0/termpet/internal/species"
)

// Printer writes the pre-game screens. Delay scales the typewriter effect;
// zero prints instantly.
type Printer struct {
	W     io.Writer
	Delay time.Duration
}

// PickSpecies asks the player to choose a species and returns its ID.
func (p *Printer) PickSpecies(r io.Reader) (string, error) {
	reader := bufio.NewReader(r)

	fmt.Fprintln(p.W)
	p.printSlow("  \U0001F95A crk... crk...", 80)
	fmt.Fprintln(p.W)
	p.pause(500)

	fmt.Fprintln(p.W, "  what's inside the egg?")
	fmt.Fprintln(p.W)

	// Display species grid (2 columns)
	for i := 0; i < len(species.OrderedIDs); i += 2 {
		leftSp := species.Registry[species.OrderedIDs[i]]
		col1 := fmt.Sprintf("  %d) %s %-12s", i+1, leftSp.Emoji, leftSp.Name)

		if i+1 < len(species.OrderedIDs) {
			rightSp := species.Registry[species.OrderedIDs[i+1]]
			fmt.Fprintf(p.W, "%s%d) %s %s\n", col1, i+2, rightSp.Emoji, rightSp.Name)
		} else {
			fmt.Fprintln(p.W, col1)
		}
	}

	fmt.Fprintln(p.W)
	for {
		fmt.Fprint(p.W, "  > ")
		input, err := reader.ReadString('\n')
		if id, ok := parseSpecies(input); ok {
			return id, nil
		}
		if err != nil {
			return "", fmt.Errorf("reading species: %w", err)
		}
		fmt.Fprintf(p.W, "  hmm, pick a number 1-%d or type the species name\n", len(species.OrderedIDs))
	}
}

func parseSpecies(input string) (string, bool) {
	input = strings.TrimSpace(input)

	// Try as number first
	if num, err := strconv.Atoi(input); err == nil && num >= 1 && num <= len(species.OrderedIDs) {
		return species.OrderedIDs[num-1], true
	}

	lower := strings.ToLower(input)
	if _, ok := species.Registry[lower]; ok {
		return lower, true
	}
	return "", false
}

// Hatch prints the hatching reveal.
func (p *Printer) Hatch(name string, sp *species.Species) {
	fmt.Fprintln(p.W)
	fmt.Fprintf(p.W, "  %s %s %s\n", sp.Emoji, name, sp.Verbs.Hatch)
	fmt.Fprintln(p.W)
	p.printSlow(fmt.Sprintf("  hi. i'm %s.", name), 50)
	p.printSlow("  please don't forget to feed me.", 50)
	fmt.Fprintln(p.W)
}

// Check is one line of the startup checklist.
type Check struct {
	Label string
	OK    bool
}

// PrintStartup prints the startup checklist.
func (p *Printer) PrintStartup(name string, checks []Check) {
	fmt.Fprintln(p.W, "  starting up...")

	for _, c := range checks {
		p.pause(200)
		mark := "\u2713"
		if !c.OK {
			mark = "\u2717"
		}
		fmt.Fprintf(p.W, "  %s %s\n", mark, c.Label)
	}

	fmt.Fprintln(p.W)
	p.printSlow(fmt.Sprintf("  %s is alive. don't forget about me.", name), 40)
	fmt.Fprintln(p.W)
	p.pause(1000)
}

func (p *Printer) pause(ms int) {
	time.Sleep(time.Duration(ms) * p.Delay)
}

func (p *Printer) printSlow(text string, delayMs int) {
	for _, ch := range text {
		fmt.Fprint(p.W, string(ch))
		p.pause(delayMs)
	}
	fmt.Fprintln(p.W)
}
