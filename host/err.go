package host

import (
	"errors"

	"github.com/ezrec/duel17/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrTapeCommand = errors.New(f("unknown command"))
	ErrTapeArgs    = errors.New(f("wrong number of arguments"))
	ErrTapeKey     = errors.New(f("unknown key"))
	ErrTapeFlag    = errors.New(f("unknown modifier"))
	ErrTapeNumber  = errors.New(f("invalid number"))
)

// ErrTape is an error at a line of an event script.
type ErrTape struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrTape) Error() string {
	return f("line %d: %v: %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrTape) Unwrap() error {
	return err.Err
}
