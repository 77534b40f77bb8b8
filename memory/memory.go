// Package memory implements the flat 64K word store of the LC-3, including
// the memory-mapped keyboard registers. Reads of the keyboard status
// register poll an injectable input device rather than the real console, so
// the store stays deterministic under test.
package memory

import (
	"github.com/lc3go/lc3/io"
)

// Size is the number of 16-bit cells; a 16-bit address covers it exactly.
const Size = 1 << 16

// Memory-mapped device registers.
const (
	KBSR uint16 = 0xFE00 /* keyboard status register */
	KBDR uint16 = 0xFE02 /* keyboard data register */
)

// kbReady is the KBSR bit reporting a latched keystroke.
const kbReady = uint16(1) << 15

// Memory is the word store. Every address is valid; address arithmetic
// performed by callers wraps modulo the address space.
type Memory struct {
	cells [Size]uint16
	keys  io.Keyboard
}

// New creates a zeroed Memory polling keys for keyboard input.
func New(keys io.Keyboard) *Memory {
	return &Memory{keys: keys}
}

// Read returns the cell at addr.
//
// Reading KBSR first polls the input device: a pending byte sets the ready
// bit and latches the byte into KBDR, otherwise KBSR is cleared. Reading
// KBDR drops the ready bit, as the hardware does once the keystroke has
// been consumed.
func (mem *Memory) Read(addr uint16) uint16 {
	switch addr {
	case KBSR:
		if value, ok := mem.keys.Poll(); ok {
			mem.cells[KBSR] = kbReady
			mem.cells[KBDR] = uint16(value)
		} else {
			mem.cells[KBSR] = 0
		}
	case KBDR:
		mem.cells[KBSR] &^= kbReady
	}

	return mem.cells[addr]
}

// Write stores value at addr.
func (mem *Memory) Write(addr, value uint16) {
	mem.cells[addr] = value
}
