package vm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lc3go/lc3/io"
)

func testMachine(input string) (m *Machine, out *bytes.Buffer) {
	out = &bytes.Buffer{}
	m = New(io.NewFeed(strings.NewReader(input)), out)
	return
}

func TestLoadImage(t *testing.T) {
	assert := assert.New(t)

	m, _ := testMachine("")
	image := []byte{0x30, 0x00, 0x10, 0x01}

	err := m.LoadImage(bytes.NewReader(image))
	assert.NoError(err)
	assert.Equal(uint16(0x1001), m.Mem.Read(0x3000))
}

func TestLoadImageSeveralWords(t *testing.T) {
	assert := assert.New(t)

	m, _ := testMachine("")
	image := []byte{0x40, 0x00, 0xDE, 0xAD, 0xBE, 0xEF}

	err := m.LoadImage(bytes.NewReader(image))
	assert.NoError(err)
	assert.Equal(uint16(0xDEAD), m.Mem.Read(0x4000))
	assert.Equal(uint16(0xBEEF), m.Mem.Read(0x4001))
}

// Words past the top of the address space wrap around to address zero.
func TestLoadImageWrapsOrigin(t *testing.T) {
	assert := assert.New(t)

	m, _ := testMachine("")
	image := []byte{0xFF, 0xFF, 0x11, 0x11, 0x22, 0x22}

	err := m.LoadImage(bytes.NewReader(image))
	assert.NoError(err)
	assert.Equal(uint16(0x1111), m.Mem.Read(0xFFFF))
	assert.Equal(uint16(0x2222), m.Mem.Read(0x0000))
}

func TestLoadImageMalformed(t *testing.T) {
	assert := assert.New(t)

	m, _ := testMachine("")

	err := m.LoadImage(bytes.NewReader(nil))
	assert.ErrorIs(err, &ErrImage{})

	err = m.LoadImage(bytes.NewReader([]byte{0x30}))
	assert.ErrorIs(err, &ErrImage{})

	err = m.LoadImage(bytes.NewReader([]byte{0x30, 0x00, 0x10}))
	assert.ErrorIs(err, &ErrImage{})
}

func TestLoadMissingFile(t *testing.T) {
	assert := assert.New(t)

	m, _ := testMachine("")

	err := m.Load("does-not-exist.obj")
	assert.Error(err)

	var open *ErrOpen
	assert.ErrorAs(err, &open)
	assert.Equal("does-not-exist.obj", open.Path)
}
