package cpu

import (
	"errors"
	"unicode"
)

// Vector selects a built-in trap routine.
type Vector uint16

//go:generate go tool stringer -linecomment -type=Vector
const (
	TRAP_GETC  = Vector(0x20) // getc
	TRAP_OUT   = Vector(0x21) // out
	TRAP_PUTS  = Vector(0x22) // puts
	TRAP_IN    = Vector(0x23) // in
	TRAP_PUTSP = Vector(0x24) // putsp
	TRAP_HALT  = Vector(0x25) // halt
)

// trap stores the return link in r7 and dispatches on the vector in the
// low byte of the instruction.
func (cpu *Cpu) trap(code Code) (err error) {
	cpu.Reg.Set(7, cpu.Reg.Pc)

	vector := code.Vector()
	switch vector {
	case TRAP_GETC:
		err = cpu.trapGetc()
	case TRAP_OUT:
		err = cpu.trapOut()
	case TRAP_PUTS:
		err = cpu.trapPuts()
	case TRAP_IN:
		err = cpu.trapIn()
	case TRAP_PUTSP:
		err = cpu.trapPutsp()
	case TRAP_HALT:
		cpu.Running = false
	default:
		err = ErrTrapVector(vector)
	}

	return
}

// trapGetc reads one byte without echo and stores it in r0.
func (cpu *Cpu) trapGetc() (err error) {
	value, err := cpu.Keys.ReadByte()
	if err != nil {
		return &ErrTrapIo{Vector: TRAP_GETC, Err: err}
	}

	cpu.Reg.Set(0, uint16(value))
	cpu.Reg.UpdateFlags(0)
	return
}

// trapOut writes the low byte of r0.
func (cpu *Cpu) trapOut() (err error) {
	err = cpu.putAscii(byte(cpu.Reg.R[0]))
	if err != nil {
		return cpu.trapFail(TRAP_OUT, err)
	}

	return cpu.flush(TRAP_OUT)
}

// trapPuts writes the zero-terminated string starting at the address in
// r0, one ASCII byte per cell.
func (cpu *Cpu) trapPuts() (err error) {
	for addr := cpu.Reg.R[0]; ; addr++ {
		cell := cpu.Mem.Read(addr)
		if cell == 0 {
			break
		}
		err = cpu.putAscii(byte(cell))
		if err != nil {
			return cpu.trapFail(TRAP_PUTS, err)
		}
	}

	return cpu.flush(TRAP_PUTS)
}

// trapIn prompts, reads one byte, echoes it, and stores it in r0.
func (cpu *Cpu) trapIn() (err error) {
	_, err = cpu.Out.WriteString("Enter a character: ")
	if err == nil {
		err = cpu.Out.Flush()
	}
	if err != nil {
		return &ErrTrapIo{Vector: TRAP_IN, Err: err}
	}

	value, err := cpu.Keys.ReadByte()
	if err != nil {
		return &ErrTrapIo{Vector: TRAP_IN, Err: err}
	}

	err = cpu.putAscii(value)
	if err != nil {
		return cpu.trapFail(TRAP_IN, err)
	}
	err = cpu.flush(TRAP_IN)
	if err != nil {
		return
	}

	cpu.Reg.Set(0, uint16(value))
	cpu.Reg.UpdateFlags(0)
	return
}

// trapPutsp writes the zero-terminated string starting at the address in
// r0, two packed ASCII bytes per cell, low byte first. A zero high byte
// inside a nonzero cell is skipped, which covers odd-length strings.
func (cpu *Cpu) trapPutsp() (err error) {
	for addr := cpu.Reg.R[0]; ; addr++ {
		cell := cpu.Mem.Read(addr)
		if cell == 0 {
			break
		}
		err = cpu.putAscii(byte(cell))
		if err != nil {
			return cpu.trapFail(TRAP_PUTSP, err)
		}
		if cell>>8 != 0 {
			err = cpu.putAscii(byte(cell >> 8))
			if err != nil {
				return cpu.trapFail(TRAP_PUTSP, err)
			}
		}
	}

	return cpu.flush(TRAP_PUTSP)
}

// putAscii buffers one output byte, rejecting values outside ASCII.
func (cpu *Cpu) putAscii(value byte) (err error) {
	if value > unicode.MaxASCII {
		return ErrCharacter(value)
	}

	return cpu.Out.WriteByte(value)
}

func (cpu *Cpu) flush(vector Vector) (err error) {
	err = cpu.Out.Flush()
	if err != nil {
		err = &ErrTrapIo{Vector: vector, Err: err}
	}

	return
}

// trapFail keeps character errors as-is and wraps anything else as a
// console I/O failure of the given trap.
func (cpu *Cpu) trapFail(vector Vector, err error) error {
	if errors.Is(err, ErrCharacter(0)) {
		return err
	}

	return &ErrTrapIo{Vector: vector, Err: err}
}
