package markup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorReporting(t *testing.T) {
	parser := MustNew()
	_, err := parser.ParseString("", `<public class="A"/>`)
	require.NoError(t, err)
	_, err = parser.ParseString("", `<public class=A/>`)
	require.EqualError(t, err, `1:8: unexpected input " class=A/>"`)
	_, err = parser.ParseString("", `<public class="A"></private>`)
	require.EqualError(t, err, `1:19: unexpected input "</private>"`)

	var perr Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, `unexpected input "</private>"`, perr.Message())
	require.Equal(t, Position{Offset: 18, Line: 1, Column: 19}, perr.Position())
}

func TestWrapf(t *testing.T) {
	cause := errors.New("badbad")
	err := Wrapf(Position{Line: 1, Column: 1}, cause, "bad: %s", "thing")
	require.Equal(t, cause, errors.Unwrap(err))
	require.Equal(t, "1:1: bad: thing: badbad", err.Error())

	inner := Errorf(Position{Line: 2, Column: 3}, "inner")
	err = Wrapf(Position{Line: 1, Column: 1}, inner, "outer")
	require.Equal(t, "2:3: outer: inner", err.Error())
	require.Equal(t, Position{Line: 2, Column: 3}, err.Position())
}

func TestPositionWithoutLine(t *testing.T) {
	require.Equal(t, "doc.xml", Position{Filename: "doc.xml"}.String())
	require.Equal(t, "doc.xml: oops", FormatError(Position{Filename: "doc.xml"}, "oops"))
	require.Equal(t, "oops", FormatError(Position{}, "oops"))
	require.EqualError(t, Errorf(Position{}, "oops %d", 1), "oops 1")
}
