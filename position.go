package markup

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position in a source document.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Filename: %q, Offset: %d, Line: %d, Column: %d}",
		p.Filename, p.Offset, p.Line, p.Column)
}

// String returns "[<filename>:]<line>:<col>", or just the filename if the
// position has no line.
func (p Position) String() string {
	filename := p.Filename
	if p.Line == 0 {
		return filename
	}
	if filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", filename, p.Line, p.Column)
}

// PositionOf returns the position of remaining within source.
//
// remaining must be a suffix of source, as returned by a failed parse.
func PositionOf(filename, source, remaining string) Position {
	offset := len(source) - len(remaining)
	if offset < 0 || offset > len(source) {
		offset = len(source)
	}
	consumed := source[:offset]
	line := strings.Count(consumed, "\n") + 1
	column := utf8.RuneCountInString(consumed[strings.LastIndexByte(consumed, '\n')+1:]) + 1
	return Position{Filename: filename, Offset: offset, Line: line, Column: column}
}

// FormatError formats an error in the form "[<filename>:]<line>:<col>: <message>"
//
// The location prefix is omitted when pos carries neither a filename nor a line.
func FormatError(pos Position, message string) string {
	if location := pos.String(); location != "" {
		return fmt.Sprintf("%s: %s", location, message)
	}
	return message
}
