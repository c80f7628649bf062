// Package terminal is the console side of the game: an ANSI screen with
// addressable lines and a raw-mode keyboard.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/moorebrett0/termpet/internal/display"
)

// Screen writes whole lines at fixed rows. All output goes through one
// mutex so lines written from different goroutines never interleave.
type Screen struct {
	mu    sync.Mutex
	w     io.Writer
	width func() int
}

// NewScreen creates a screen on w. width reports the current terminal width.
func NewScreen(w io.Writer, width func() int) *Screen {
	return &Screen{w: w, width: width}
}

// Clear blanks the terminal and parks the cursor.
func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	io.WriteString(s.w, "\x1b[2J")
	s.park()
}

// WriteLine writes text at the start of line.
func (s *Screen) WriteLine(line int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\x1b[%d;1H%s", line+1, text)
	s.park()
}

// ClearLine overwrites line with spaces across the full width.
func (s *Screen) ClearLine(line int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\x1b[%d;1H%s", line+1, strings.Repeat(" ", s.width()))
	s.park()
}

// Close moves the cursor below the last game line.
func (s *Screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\x1b[%d;1H\r\n", display.LineRemark+2)
}

// park leaves the cursor on the input row, out of the way of drawn lines.
func (s *Screen) park() {
	fmt.Fprintf(s.w, "\x1b[%d;1H", display.LineCursor+1)
}
