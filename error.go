package markup

import (
	"fmt"
	"strconv"
)

// Error represents an error while parsing.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() Position
}

var (
	_ Error = &UnexpectedInputError{}
	_ Error = &DepthError{}
	_ Error = &parseError{}
)

// UnexpectedInputError is returned when the grammar does not match the input.
//
// Remaining is the unparsed input at the point of failure.
type UnexpectedInputError struct {
	Remaining string
	Pos       Position
}

func (u *UnexpectedInputError) Error() string { return FormatError(u.Pos, u.Message()) }

func (u *UnexpectedInputError) Message() string { // nolint: golint
	if u.Remaining == "" {
		return "unexpected end of input"
	}
	return fmt.Sprintf("unexpected input %s", near(u.Remaining))
}
func (u *UnexpectedInputError) Position() Position { return u.Pos } // nolint: golint

// DepthError is returned when elements nest deeper than the configured maximum.
type DepthError struct {
	Name     string
	MaxDepth int
	Pos      Position

	remaining string
}

func (d *DepthError) Error() string { return FormatError(d.Pos, d.Message()) }

func (d *DepthError) Message() string { // nolint: golint
	return fmt.Sprintf("element <%s> exceeds maximum nesting depth of %d", d.Name, d.MaxDepth)
}
func (d *DepthError) Position() Position { return d.Pos } // nolint: golint

type parseError struct {
	Msg string
	Pos Position
	Err error
}

func (p *parseError) Error() string      { return FormatError(p.Pos, p.Msg) }
func (p *parseError) Message() string    { return p.Msg }
func (p *parseError) Position() Position { return p.Pos }
func (p *parseError) Unwrap() error      { return p.Err }

// Errorf creates a new Error at the given position.
func Errorf(pos Position, format string, args ...interface{}) Error {
	return &parseError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// Wrapf attempts to wrap an existing error in a new message.
//
// If "err" is a markup.Error, its positional information will be used.
//
// The returned error implements the Unwrap() method supported by the errors package.
func Wrapf(pos Position, err error, format string, args ...interface{}) Error {
	var msg string
	if perr, ok := err.(Error); ok {
		pos = perr.Position()
		msg = fmt.Sprintf("%s: %s", fmt.Sprintf(format, args...), perr.Message())
	} else {
		msg = fmt.Sprintf("%s: %s", fmt.Sprintf(format, args...), err.Error())
	}
	return &parseError{Msg: msg, Pos: pos, Err: err}
}

func near(s string) string {
	const limit = 16
	n := 0
	for i := range s {
		if n == limit {
			return strconv.Quote(s[:i]) + "..."
		}
		n++
	}
	return strconv.Quote(s)
}
