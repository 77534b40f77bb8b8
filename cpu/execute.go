package cpu

// Execute dispatches one instruction word to its handler. All address and
// value arithmetic wraps modulo 2^16. RTI and the reserved opcode have no
// semantics but still a defined outcome: an unimplemented-opcode error.
func (cpu *Cpu) Execute(code Code) (err error) {
	switch code.Op() {
	case OP_ADD:
		cpu.add(code)
	case OP_AND:
		cpu.and(code)
	case OP_NOT:
		cpu.not(code)
	case OP_BR:
		cpu.br(code)
	case OP_JMP:
		cpu.jmp(code)
	case OP_JSR:
		cpu.jsr(code)
	case OP_LD:
		cpu.ld(code)
	case OP_LDI:
		cpu.ldi(code)
	case OP_LDR:
		cpu.ldr(code)
	case OP_LEA:
		cpu.lea(code)
	case OP_ST:
		cpu.st(code)
	case OP_STI:
		cpu.sti(code)
	case OP_STR:
		cpu.str(code)
	case OP_TRAP:
		err = cpu.trap(code)
	case OP_RTI, OP_RES:
		err = ErrUnimplemented(code.Op())
	}

	return
}

// operand returns the second ALU operand: a register in register mode, the
// sign-extended imm5 field in immediate mode.
func (cpu *Cpu) operand(code Code) uint16 {
	if code.ImmMode() {
		return code.Imm5()
	}
	return cpu.Reg.R[code.Sr2()]
}

func (cpu *Cpu) add(code Code) {
	dr := code.Dr()
	cpu.Reg.Set(dr, cpu.Reg.R[code.Sr()]+cpu.operand(code))
	cpu.Reg.UpdateFlags(dr)
}

func (cpu *Cpu) and(code Code) {
	dr := code.Dr()
	cpu.Reg.Set(dr, cpu.Reg.R[code.Sr()]&cpu.operand(code))
	cpu.Reg.UpdateFlags(dr)
}

func (cpu *Cpu) not(code Code) {
	dr := code.Dr()
	cpu.Reg.Set(dr, ^cpu.Reg.R[code.Sr()])
	cpu.Reg.UpdateFlags(dr)
}

func (cpu *Cpu) br(code Code) {
	if code.Nzp()&cpu.Reg.Cond != 0 {
		cpu.Reg.Pc += code.PcOffset9()
	}
}

// jmp also covers RET, the conventional JMP through r7.
func (cpu *Cpu) jmp(code Code) {
	cpu.Reg.Pc = cpu.Reg.R[code.Sr()]
}

// jsr writes the return link to r7 before the jump, so JSRR through r7
// jumps to the link itself.
func (cpu *Cpu) jsr(code Code) {
	cpu.Reg.Set(7, cpu.Reg.Pc)

	if code.Long() {
		cpu.Reg.Pc += code.PcOffset11()
	} else {
		cpu.Reg.Pc = cpu.Reg.R[code.Sr()]
	}
}

func (cpu *Cpu) ld(code Code) {
	dr := code.Dr()
	cpu.Reg.Set(dr, cpu.Mem.Read(cpu.Reg.Pc+code.PcOffset9()))
	cpu.Reg.UpdateFlags(dr)
}

func (cpu *Cpu) ldi(code Code) {
	dr := code.Dr()
	cpu.Reg.Set(dr, cpu.Mem.Read(cpu.Mem.Read(cpu.Reg.Pc+code.PcOffset9())))
	cpu.Reg.UpdateFlags(dr)
}

func (cpu *Cpu) ldr(code Code) {
	dr := code.Dr()
	cpu.Reg.Set(dr, cpu.Mem.Read(cpu.Reg.R[code.Sr()]+code.Offset6()))
	cpu.Reg.UpdateFlags(dr)
}

// lea loads the address itself, not the cell behind it.
func (cpu *Cpu) lea(code Code) {
	dr := code.Dr()
	cpu.Reg.Set(dr, cpu.Reg.Pc+code.PcOffset9())
	cpu.Reg.UpdateFlags(dr)
}

func (cpu *Cpu) st(code Code) {
	cpu.Mem.Write(cpu.Reg.Pc+code.PcOffset9(), cpu.Reg.R[code.Dr()])
}

func (cpu *Cpu) sti(code Code) {
	cpu.Mem.Write(cpu.Mem.Read(cpu.Reg.Pc+code.PcOffset9()), cpu.Reg.R[code.Dr()])
}

func (cpu *Cpu) str(code Code) {
	cpu.Mem.Write(cpu.Reg.R[code.Sr()]+code.Offset6(), cpu.Reg.R[code.Dr()])
}
