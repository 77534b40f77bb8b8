package memory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lc3go/lc3/io"
)

func testMemory(input string) *Memory {
	return New(io.NewFeed(strings.NewReader(input)))
}

func TestReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := testMemory("")
	assert.Equal(uint16(0), mem.Read(0x3000))

	mem.Write(0x3000, 0xBEEF)
	assert.Equal(uint16(0xBEEF), mem.Read(0x3000))

	mem.Write(0xFFFF, 0x0001)
	assert.Equal(uint16(0x0001), mem.Read(0xFFFF))
}

func TestKbsrLatchesKeystroke(t *testing.T) {
	assert := assert.New(t)

	mem := testMemory("A")

	status := mem.Read(KBSR)
	assert.Equal(uint16(0x8000), status)
	assert.Equal(uint16('A'), mem.Read(KBDR))
}

func TestKbsrNoInput(t *testing.T) {
	assert := assert.New(t)

	mem := testMemory("")

	assert.Equal(uint16(0), mem.Read(KBSR))
}

// Reading the data register consumes the keystroke: the ready bit drops
// until the next poll latches a new byte.
func TestKbdrDropsReady(t *testing.T) {
	assert := assert.New(t)

	mem := testMemory("AB")

	assert.Equal(uint16(0x8000), mem.Read(KBSR))
	assert.Equal(uint16('A'), mem.Read(KBDR))
	assert.Equal(uint16(0), mem.cells[KBSR]&(uint16(1)<<15))

	assert.Equal(uint16(0x8000), mem.Read(KBSR))
	assert.Equal(uint16('B'), mem.Read(KBDR))
}

// The status cell is an ordinary cell for writes.
func TestKbsrWrite(t *testing.T) {
	assert := assert.New(t)

	mem := testMemory("")
	mem.Write(KBSR, 0x8000)
	assert.Equal(uint16(0x8000), mem.cells[KBSR])
}
