package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepFetchIncrement(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := testCpu("")
	cpu.Mem.Write(PcStart, 0b0001_000_000_1_00001) // ADD r0, r0, #1

	err := cpu.Step()
	assert.NoError(err)
	assert.Equal(PcStart+1, cpu.Reg.Pc)
	assert.Equal(uint16(1), cpu.Reg.R[0])
}

// Offsets are relative to the incremented program counter.
func TestStepPcRelative(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := testCpu("")
	cpu.Mem.Write(PcStart, 0b0010_000_000000000) // LD r0, #0
	cpu.Mem.Write(PcStart+1, 0x4242)

	err := cpu.Step()
	assert.NoError(err)
	assert.Equal(uint16(0x4242), cpu.Reg.R[0])
}

func TestRunProgram(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := testCpu("")
	program := []uint16{
		0b0101_000_000_1_00000,  // AND r0, r0, #0
		0b0001_000_000_1_00101,  // ADD r0, r0, #5
		0b0101_001_001_1_00000,  // AND r1, r1, #0
		0b0001_001_001_1_00011,  // ADD r1, r1, #3
		0b0001_010_000_0_00_001, // ADD r2, r0, r1
		0xF025,                  // TRAP halt
	}
	for n, word := range program {
		cpu.Mem.Write(PcStart+uint16(n), word)
	}

	for cpu.Running {
		assert.NoError(cpu.Step())
	}

	assert.Equal(uint16(5), cpu.Reg.R[0])
	assert.Equal(uint16(3), cpu.Reg.R[1])
	assert.Equal(uint16(8), cpu.Reg.R[2])
	assert.Equal(FlagPositive, cpu.Reg.Cond)
}

func TestReset(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := testCpu("")
	cpu.Reg.Set(0, 7)
	cpu.Reg.UpdateFlags(0)
	cpu.Running = false
	cpu.Mem.Write(0x4000, 0x1234)

	cpu.Reset()

	assert.True(cpu.Running)
	assert.Equal(uint16(0), cpu.Reg.R[0])
	assert.Equal(PcStart, cpu.Reg.Pc)
	assert.Equal(uint16(0x1234), cpu.Mem.Read(0x4000), "reset must not clear memory")
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := testCpu("")
	cpu.Reg.Set(2, 0xBEEF)

	text := cpu.String()
	assert.Contains(text, "r2: beef")
	assert.Contains(text, "pc: 3000")
	assert.Contains(text, "cond: z")
}
