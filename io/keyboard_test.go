package io

import (
	goIO "io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedPoll(t *testing.T) {
	assert := assert.New(t)

	feed := NewFeed(strings.NewReader("ab"))

	value, ok := feed.Poll()
	assert.True(ok)
	assert.Equal(byte('a'), value)

	value, ok = feed.Poll()
	assert.True(ok)
	assert.Equal(byte('b'), value)

	_, ok = feed.Poll()
	assert.False(ok)
}

func TestFeedReadByte(t *testing.T) {
	assert := assert.New(t)

	feed := NewFeed(strings.NewReader("x"))

	value, err := feed.ReadByte()
	assert.NoError(err)
	assert.Equal(byte('x'), value)

	_, err = feed.ReadByte()
	assert.ErrorIs(err, goIO.EOF)
}

func TestTerminalReadByte(t *testing.T) {
	assert := assert.New(t)

	rd, wr, err := os.Pipe()
	assert.NoError(err)
	defer rd.Close()

	term := NewTerminal(rd)

	_, err = wr.Write([]byte{'k'})
	assert.NoError(err)

	value, err := term.ReadByte()
	assert.NoError(err)
	assert.Equal(byte('k'), value)

	wr.Close()
	_, err = term.ReadByte()
	assert.ErrorIs(err, ErrInputClosed)
}

// A pipe is not a terminal, so raw mode is a no-op and Restore is safe to
// call any number of times.
func TestTerminalRawModeNonTty(t *testing.T) {
	assert := assert.New(t)

	rd, wr, err := os.Pipe()
	assert.NoError(err)
	defer rd.Close()
	defer wr.Close()

	term := NewTerminal(rd)
	assert.NoError(term.MakeRaw())
	term.Restore()
	term.Restore()
}
