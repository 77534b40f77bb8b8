// Package io provides the console input devices for the LC-3 machine.
// The keyboard is modelled as a capability interface so the memory-mapped
// status register and the input traps can be driven by a real terminal or
// by a deterministic byte stream in tests.
package io

import (
	"bufio"
	goIO "io"
)

// Keyboard is the external input device seen by the machine.
type Keyboard interface {
	// Poll reports a pending byte without blocking.
	Poll() (byte, bool)
	// ReadByte blocks until a byte is available or input fails.
	ReadByte() (byte, error)
}

// Feed is a Keyboard over a plain byte stream. It is used for piped input
// and for tests; a byte is "pending" as long as the stream has not ended.
type Feed struct {
	in *bufio.Reader
}

// NewFeed creates a Feed reading from r.
func NewFeed(r goIO.Reader) *Feed {
	return &Feed{in: bufio.NewReader(r)}
}

// Poll consumes and returns the next byte, if the stream has one left.
func (fd *Feed) Poll() (value byte, ok bool) {
	value, err := fd.in.ReadByte()
	if err != nil {
		return 0, false
	}
	return value, true
}

// ReadByte returns the next byte from the stream.
func (fd *Feed) ReadByte() (value byte, err error) {
	return fd.in.ReadByte()
}
