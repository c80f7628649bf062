package onboarding

import (
	"bytes"
	"strings"
	"testing"

	"github.com/moorebrett0/termpet/internal/species"
)

func TestPickSpecies(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"by number", "2\n", species.OrderedIDs[1]},
		{"by name", "Crab\n", "crab"},
		{"retries until valid", "dragon\n99\npenguin\n", "penguin"},
		{"last line without newline", "axolotl", "axolotl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &Printer{W: &out}
			got, err := p.PickSpecies(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("pick: %v", err)
			}
			if got != tt.want {
				t.Fatalf("picked %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPickSpeciesEOF(t *testing.T) {
	p := &Printer{W: &bytes.Buffer{}}
	if _, err := p.PickSpecies(strings.NewReader("nope\n")); err == nil {
		t.Fatal("expected error at end of input")
	}
}

func TestHatchAndStartup(t *testing.T) {
	var out bytes.Buffer
	p := &Printer{W: &out}
	p.Hatch("Mochi", species.Lookup("turtle"))
	p.PrintStartup("Mochi", []Check{{"engine running", true}, {"discord connected", false}})

	got := out.String()
	for _, want := range []string{
		"Mochi slowly pokes a head out of the shell",
		"hi. i'm Mochi.",
		"\u2713 engine running",
		"\u2717 discord connected",
		"Mochi is alive. don't forget about me.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
