package io

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is a Keyboard over an interactive terminal. A background
// goroutine pumps single bytes from the file into a small buffer so that
// Poll never blocks. MakeRaw puts the terminal into non-canonical,
// no-echo mode; Restore must be called before the process exits.
type Terminal struct {
	in    *os.File
	saved unix.Termios
	raw   bool
	keys  chan byte
}

// NewTerminal creates a Terminal reading from in and starts the byte pump.
func NewTerminal(in *os.File) *Terminal {
	tm := &Terminal{
		in:   in,
		keys: make(chan byte, 1),
	}
	go tm.pump()

	return tm
}

// MakeRaw disables canonical input and echo so the machine sees individual
// keystrokes. It is a no-op when the input is not a terminal.
func (tm *Terminal) MakeRaw() (err error) {
	if !term.IsTerminal(int(tm.in.Fd())) {
		return
	}

	err = termios.Tcgetattr(tm.in.Fd(), &tm.saved)
	if err != nil {
		return
	}

	raw := tm.saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	err = termios.Tcsetattr(tm.in.Fd(), termios.TCSANOW, &raw)
	if err != nil {
		return
	}

	tm.raw = true
	return
}

// Restore puts the terminal back into the mode MakeRaw found it in.
func (tm *Terminal) Restore() {
	if tm.raw {
		termios.Tcsetattr(tm.in.Fd(), termios.TCSANOW, &tm.saved)
		tm.raw = false
	}
}

// Poll reports a pending keystroke without blocking.
func (tm *Terminal) Poll() (value byte, ok bool) {
	select {
	case value, ok = <-tm.keys:
		return
	default:
		return 0, false
	}
}

// ReadByte blocks until a keystroke arrives or input is closed.
func (tm *Terminal) ReadByte() (value byte, err error) {
	value, ok := <-tm.keys
	if !ok {
		return 0, ErrInputClosed
	}
	return
}

func (tm *Terminal) pump() {
	var one [1]byte
	for {
		n, err := tm.in.Read(one[:])
		if err != nil {
			close(tm.keys)
			return
		}
		if n == 0 {
			continue
		}
		tm.keys <- one[0]
	}
}
