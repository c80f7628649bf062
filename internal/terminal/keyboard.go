package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"golang.org/x/term"

	"github.com/moorebrett0/termpet/internal/action"
)

const (
	keyEsc   = 0x1b
	keyCtrlC = 0x03
)

// Keyboard delivers single key presses. A reader goroutine forwards keys as
// they arrive; Next drops anything typed while nobody was waiting.
type Keyboard struct {
	keys    chan action.Command
	err     error
	restore func() error
}

// OpenKeyboard puts f into raw mode and starts reading it. Close restores
// the previous mode.
func OpenKeyboard(f *os.File) (*Keyboard, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("terminal: stdin is not a terminal")
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("terminal: entering raw mode: %w", err)
	}
	k := NewKeyboard(f)
	k.restore = func() error { return term.Restore(fd, old) }
	return k, nil
}

// NewKeyboard reads keys from r, which must already deliver one byte per
// key press.
func NewKeyboard(r io.Reader) *Keyboard {
	k := &Keyboard{keys: make(chan action.Command, 64)}
	go k.read(bufio.NewReader(r))
	return k
}

func (k *Keyboard) read(r *bufio.Reader) {
	defer close(k.keys)
	for {
		b, err := r.ReadByte()
		if err != nil {
			k.err = err
			return
		}
		if b == keyEsc && r.Buffered() > 0 {
			// Arrow and function keys arrive as ESC followed by more bytes
			// in the same read.
			r.Discard(r.Buffered())
			continue
		}
		cmd := Decode(b)
		if cmd == action.None {
			continue
		}
		select {
		case k.keys <- cmd:
		default:
		}
	}
}

// Next discards any pending keys, then waits for the next one.
func (k *Keyboard) Next(ctx context.Context) (action.Command, error) {
	for drained := false; !drained; {
		select {
		case _, ok := <-k.keys:
			if !ok {
				return action.None, k.readErr()
			}
		default:
			drained = true
		}
	}

	select {
	case <-ctx.Done():
		return action.None, ctx.Err()
	case cmd, ok := <-k.keys:
		if !ok {
			return action.None, k.readErr()
		}
		return cmd, nil
	}
}

func (k *Keyboard) readErr() error {
	if k.err == nil {
		return io.EOF
	}
	return k.err
}

// Close restores the terminal mode.
func (k *Keyboard) Close() error {
	if k.restore == nil {
		return nil
	}
	return k.restore()
}

// Decode maps a key to a command. Letters are case-insensitive; Esc and
// Ctrl-C exit.
func Decode(b byte) action.Command {
	switch b {
	case keyEsc, keyCtrlC:
		return action.Exit
	}
	switch unicode.ToLower(rune(b)) {
	case 'f':
		return action.Feed
	case 'b':
		return action.Bed
	case 'w':
		return action.Wake
	case 'c':
		return action.Clean
	case 'p':
		return action.Play
	}
	return action.None
}
