package cpu

import (
	"fmt"
)

// Opcode is the 4-bit operation selector in the top bits of an instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_BR   = Opcode(0)  // br
	OP_ADD  = Opcode(1)  // add
	OP_LD   = Opcode(2)  // ld
	OP_ST   = Opcode(3)  // st
	OP_JSR  = Opcode(4)  // jsr
	OP_AND  = Opcode(5)  // and
	OP_LDR  = Opcode(6)  // ldr
	OP_STR  = Opcode(7)  // str
	OP_RTI  = Opcode(8)  // rti
	OP_NOT  = Opcode(9)  // not
	OP_LDI  = Opcode(10) // ldi
	OP_STI  = Opcode(11) // sti
	OP_JMP  = Opcode(12) // jmp
	OP_RES  = Opcode(13) // res
	OP_LEA  = Opcode(14) // lea
	OP_TRAP = Opcode(15) // trap
)

// Code is a single 16-bit instruction word.
type Code uint16

// Op returns the opcode selector. A 4-bit field covers all sixteen defined
// opcodes, so decoding is total.
func (code Code) Op() Opcode {
	return Opcode(code >> 12)
}

// Dr returns the register field in bits [11:9]: the destination register,
// or the source register of the store instructions.
func (code Code) Dr() int {
	return int(code>>9) & 0x7
}

// Sr returns the register field in bits [8:6]: the first source register,
// or the base register of JMP, JSRR, LDR and STR.
func (code Code) Sr() int {
	return int(code>>6) & 0x7
}

// Sr2 returns the second source register field, bits [2:0].
func (code Code) Sr2() int {
	return int(code) & 0x7
}

// ImmMode reports whether bit [5] selects the imm5 operand form of
// ADD and AND.
func (code Code) ImmMode() bool {
	return code&(1<<5) != 0
}

// Long reports whether bit [11] selects the PC-relative form of JSR.
func (code Code) Long() bool {
	return code&(1<<11) != 0
}

// Imm5 returns the sign-extended 5-bit immediate, bits [4:0].
func (code Code) Imm5() uint16 {
	return signExtend(uint16(code)&0x1F, 5)
}

// Offset6 returns the sign-extended 6-bit base offset, bits [5:0].
func (code Code) Offset6() uint16 {
	return signExtend(uint16(code)&0x3F, 6)
}

// PcOffset9 returns the sign-extended 9-bit PC offset, bits [8:0].
func (code Code) PcOffset9() uint16 {
	return signExtend(uint16(code)&0x1FF, 9)
}

// PcOffset11 returns the sign-extended 11-bit PC offset, bits [10:0].
func (code Code) PcOffset11() uint16 {
	return signExtend(uint16(code)&0x7FF, 11)
}

// Nzp returns the branch condition bits [11:9] as a flag mask.
func (code Code) Nzp() Flag {
	return Flag(code>>9) & 0x7
}

// Vector returns the trap vector, bits [7:0].
func (code Code) Vector() Vector {
	return Vector(code & 0xFF)
}

// signExtend widens a field whose sign bit is bit width-1 to 16 bits.
func signExtend(value, width uint16) uint16 {
	if (value>>(width-1))&1 != 0 {
		value |= 0xFFFF << width
	}
	return value
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	op := code.Op()

	switch op {
	case OP_ADD, OP_AND:
		if code.ImmMode() {
			out = fmt.Sprintf("%v r%d, r%d, #%d", op, code.Dr(), code.Sr(), int16(code.Imm5()))
		} else {
			out = fmt.Sprintf("%v r%d, r%d, r%d", op, code.Dr(), code.Sr(), code.Sr2())
		}
	case OP_NOT:
		out = fmt.Sprintf("%v r%d, r%d", op, code.Dr(), code.Sr())
	case OP_BR:
		nzp := ""
		if code.Nzp()&FlagNegative != 0 {
			nzp += "n"
		}
		if code.Nzp()&FlagZero != 0 {
			nzp += "z"
		}
		if code.Nzp()&FlagPositive != 0 {
			nzp += "p"
		}
		out = fmt.Sprintf("%v%v #%d", op, nzp, int16(code.PcOffset9()))
	case OP_JMP:
		out = fmt.Sprintf("%v r%d", op, code.Sr())
	case OP_JSR:
		if code.Long() {
			out = fmt.Sprintf("%v #%d", op, int16(code.PcOffset11()))
		} else {
			out = fmt.Sprintf("%vr r%d", op, code.Sr())
		}
	case OP_LD, OP_LDI, OP_LEA, OP_ST, OP_STI:
		out = fmt.Sprintf("%v r%d, #%d", op, code.Dr(), int16(code.PcOffset9()))
	case OP_LDR, OP_STR:
		out = fmt.Sprintf("%v r%d, r%d, #%d", op, code.Dr(), code.Sr(), int16(code.Offset6()))
	case OP_TRAP:
		out = fmt.Sprintf("%v %v", op, code.Vector())
	default:
		out = op.String()
	}

	return
}
