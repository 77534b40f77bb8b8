// Package vm assembles the LC-3 machine: the processor, the word store,
// and the console devices, plus the object-image loader that fills memory
// before execution starts.
package vm

import (
	goIO "io"
	"os"

	"github.com/lc3go/lc3/cpu"
	"github.com/lc3go/lc3/io"
	"github.com/lc3go/lc3/memory"
)

// Machine is a fully wired LC-3.
type Machine struct {
	*cpu.Cpu
	Mem *memory.Memory
}

// New creates a Machine reading keyboard input from keys and writing
// console output to out. The same keyboard feeds the memory-mapped status
// register and the input traps.
func New(keys io.Keyboard, out goIO.Writer) (m *Machine) {
	mem := memory.New(keys)
	m = &Machine{
		Cpu: cpu.New(mem, keys, out),
		Mem: mem,
	}

	return
}

// Load reads the object image at path into memory.
func (m *Machine) Load(path string) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return &ErrOpen{Path: path, Err: err}
	}
	defer file.Close()

	return m.LoadImage(file)
}

// Run executes instructions until the HALT trap. The first failure stops
// the machine; there is no recovery, and the error carries the program
// counter of the faulting instruction.
func (m *Machine) Run() (err error) {
	for m.Cpu.Running {
		pc := m.Cpu.Reg.Pc
		err = m.Cpu.Step()
		if err != nil {
			return &ErrRuntime{Pc: pc, Err: err}
		}
	}

	return
}
