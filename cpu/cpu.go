package cpu

import (
	"bufio"
	"fmt"
	goIO "io"
	"log"

	"github.com/lc3go/lc3/io"
	"github.com/lc3go/lc3/memory"
)

// Cpu is the execution context: register file, memory, console, and run
// state. Instruction handlers are methods of this context and nothing else
// mutates it, so each handler is a pure transformation of context plus
// instruction word.
type Cpu struct {
	Verbose bool // Set to enable instruction tracing.

	Reg Registers      // Register file.
	Mem *memory.Memory // Word store, including the keyboard registers.

	Keys io.Keyboard   // Blocking input for the GETC and IN traps.
	Out  *bufio.Writer // Console output, flushed by the output traps.

	Running bool // Cleared only by the HALT trap.
}

// New creates a Cpu over mem, reading trap input from keys and writing
// console output to out.
func New(mem *memory.Memory, keys io.Keyboard, out goIO.Writer) (cpu *Cpu) {
	cpu = &Cpu{
		Mem:  mem,
		Keys: keys,
		Out:  bufio.NewWriter(out),
	}
	cpu.Reset()

	return
}

// Reset returns the processor to its power-on state. Memory is untouched.
func (cpu *Cpu) Reset() {
	cpu.Reg.Reset()
	cpu.Running = true
}

// Step runs a single fetch-decode-execute cycle. The program counter is
// incremented before the instruction executes, so PC-relative offsets are
// taken from the following instruction's address.
func (cpu *Cpu) Step() (err error) {
	pc := cpu.Reg.Pc
	code := Code(cpu.Mem.Read(pc))
	cpu.Reg.Pc = pc + 1

	if cpu.Verbose {
		log.Printf("%04x: %v", pc, code)
	}

	return cpu.Execute(code)
}

// String returns the current processor state as a string.
func (cpu *Cpu) String() (text string) {
	for n, value := range cpu.Reg.R {
		text += fmt.Sprintf("  r%d: %04x\n", n, value)
	}
	text += fmt.Sprintf("  pc: %04x\n", cpu.Reg.Pc)
	text += fmt.Sprintf("cond: %v\n", cpu.Reg.Cond)

	return
}
