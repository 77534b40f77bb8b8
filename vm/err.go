package vm

import (
	"github.com/lc3go/lc3/translate"
)

var f = translate.From

// ErrImage indicates a malformed object image.
type ErrImage struct {
	Err error
}

func (err *ErrImage) Error() string {
	if err.Err != nil {
		return f("object image malformed: %v", err.Err)
	}
	return f("object image malformed")
}

func (err *ErrImage) Unwrap() error {
	return err.Err
}

func (err *ErrImage) Is(target error) (ok bool) {
	_, ok = target.(*ErrImage)
	return
}

// ErrOpen indicates an object file that could not be opened.
type ErrOpen struct {
	Path string
	Err  error
}

func (err *ErrOpen) Error() string {
	return f("open %v: %v", err.Path, err.Err)
}

func (err *ErrOpen) Unwrap() error {
	return err.Err
}

// ErrRuntime locates an execution failure by program counter.
type ErrRuntime struct {
	Pc  uint16
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%04x: %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
