package cpu

import (
	"errors"

	"github.com/lc3go/lc3/translate"
)

var f = translate.From

var (
	// ErrRegisterInvalid is returned by the checked register accessor for
	// indices outside the register bank.
	ErrRegisterInvalid = errors.New(f("register invalid"))
)

// ErrUnimplemented is returned when RTI or the reserved opcode is reached.
type ErrUnimplemented Opcode

func (eu ErrUnimplemented) Error() string {
	return f("opcode %v unimplemented", Opcode(eu).String())
}

func (eu ErrUnimplemented) Is(err error) (ok bool) {
	_, ok = err.(ErrUnimplemented)
	return
}

// ErrTrapVector is returned for a trap vector with no routine behind it.
type ErrTrapVector Vector

func (ev ErrTrapVector) Error() string {
	return f("trap vector 0x%02x unknown", uint16(ev))
}

func (ev ErrTrapVector) Is(err error) (ok bool) {
	_, ok = err.(ErrTrapVector)
	return
}

// ErrCharacter is returned when a value cannot be emitted as an ASCII byte.
type ErrCharacter byte

func (ec ErrCharacter) Error() string {
	return f("character 0x%02x not ascii", byte(ec))
}

func (ec ErrCharacter) Is(err error) (ok bool) {
	_, ok = err.(ErrCharacter)
	return
}

// ErrTrapIo wraps a console failure inside a trap routine.
type ErrTrapIo struct {
	Vector Vector
	Err    error
}

func (et *ErrTrapIo) Error() string {
	return f("trap %v i/o: %v", et.Vector, et.Err)
}

func (et *ErrTrapIo) Unwrap() error {
	return et.Err
}
