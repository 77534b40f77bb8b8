package cpu

// PcStart is the canonical load origin and the reset program counter.
const PcStart = uint16(0x3000)

// nrRegisters is the size of the general-purpose register bank.
const nrRegisters = 8

// Flag is the condition code set by the flag-affecting instructions.
// Exactly one of the three states holds at any time; the values are the
// architectural nzp bits so BR can test them as a mask.
type Flag uint16

//go:generate go tool stringer -linecomment -type=Flag
const (
	FlagPositive = Flag(1 << 0) // p
	FlagZero     = Flag(1 << 1) // z
	FlagNegative = Flag(1 << 2) // n
)

// Registers is the LC-3 register file: eight general-purpose registers,
// the program counter, and the condition flag.
type Registers struct {
	R    [nrRegisters]uint16
	Pc   uint16
	Cond Flag
}

// Reset zeroes the register bank and puts the program counter at the
// canonical load origin. All registers are zero, so the flag is Zero.
func (reg *Registers) Reset() {
	clear(reg.R[:])
	reg.Pc = PcStart
	reg.Cond = FlagZero
}

// Get returns a general-purpose register value. The index is checked;
// decoded instructions always mask their register fields to 0-7, so the
// failure path exists for callers that do not.
func (reg *Registers) Get(index int) (value uint16, err error) {
	if index < 0 || index >= nrRegisters {
		err = ErrRegisterInvalid
		return
	}

	return reg.R[index], nil
}

// Set stores a general-purpose register value. The index is masked to 0-7.
func (reg *Registers) Set(index int, value uint16) {
	reg.R[index&(nrRegisters-1)] = value
}

// UpdateFlags sets the condition flag from the register written last.
func (reg *Registers) UpdateFlags(index int) {
	value := reg.R[index&(nrRegisters-1)]
	switch {
	case value == 0:
		reg.Cond = FlagZero
	case value>>15 != 0:
		reg.Cond = FlagNegative
	default:
		reg.Cond = FlagPositive
	}
}
