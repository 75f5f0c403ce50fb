package jsmn

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMem means the token capacity was exhausted mid-parse. The
	// caller may re-invoke Parse with a larger token slice after
	// Init, or size the slice up front with Count.
	ErrNoMem = errors.New("jsmn: token capacity exhausted")

	// ErrInval means the input is ungrammatical at the reported
	// position.
	ErrInval = errors.New("jsmn: invalid character")

	// ErrPart means the input ended mid-element or with unclosed
	// containers. The parser's state is left intact so a subsequent
	// call with an extended buffer can resume.
	ErrPart = errors.New("jsmn: unexpected end of input")
)

// ParseError reports a parse failure at a specific byte offset.
type ParseError struct {
	// Pos is the byte offset of the offending byte. For ErrPart it is
	// the start of the unfinished string or primitive, or the end of
	// the input when only containers are left open.
	Pos int
	err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at byte %d", e.err, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.err
}

func newParseError(err error, pos int) *ParseError {
	return &ParseError{Pos: pos, err: err}
}
