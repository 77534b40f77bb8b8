package io

import (
	"errors"

	"github.com/lc3go/lc3/translate"
)

var f = translate.From

var (
	// ErrInputClosed is returned when the input device has no more bytes
	// and never will.
	ErrInputClosed = errors.New(f("input closed"))
)
