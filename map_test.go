package markup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLower(t *testing.T) {
	parser := MustNew(Lower())
	element, err := parser.ParseString("", `<Top Label="Mixed"><Bottom/></Top>`)
	require.NoError(t, err)
	require.Equal(t, &Element{
		Name:       "top",
		Attributes: []Attribute{{"label", "Mixed"}},
		Children:   []*Element{{Name: "bottom"}},
	}, element)
}

func TestMapOrder(t *testing.T) {
	order := []string{}
	record := func(element *Element) (*Element, error) {
		order = append(order, element.Name)
		return element, nil
	}
	_, err := MustNew(Map(record)).ParseString("", `<a><b><c/></b><d/></a>`)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b", "d", "a"}, order)
}

func TestMapRemove(t *testing.T) {
	drop := func(element *Element) (*Element, error) {
		if element.Name == "drop" {
			return nil, nil
		}
		return element, nil
	}
	parser := MustNew(Map(drop))
	element, err := parser.ParseString("", `<a><drop/><b><drop><c/></drop></b><drop/></a>`)
	require.NoError(t, err)
	require.Equal(t, &Element{Name: "a", Children: []*Element{{Name: "b"}}}, element)

	_, err = parser.ParseString("doc.xml", `<drop/>`)
	require.EqualError(t, err, "doc.xml: root element <drop> was removed by a mapper")
}

func TestMapError(t *testing.T) {
	fail := errors.New("not allowed")
	parser := MustNew(Map(func(element *Element) (*Element, error) {
		if element.Name == "script" {
			return nil, fail
		}
		return element, nil
	}))
	_, err := parser.ParseString("doc.xml", `<a><script/></a>`)
	require.EqualError(t, err, "doc.xml: map: <script>: not allowed")
	require.True(t, errors.Is(err, fail))
}

func TestMapErrorHasNoFakePosition(t *testing.T) {
	parser := MustNew(Map(func(element *Element) (*Element, error) {
		if element.Name == "bad" {
			return nil, errors.New("nope")
		}
		return element, nil
	}))
	_, err := parser.ParseString("f", "<a>\n  <ok/>\n  <bad/>\n</a>")
	require.EqualError(t, err, "f: map: <bad>: nope")

	_, err = parser.ParseString("", "<bad/>")
	require.EqualError(t, err, "map: <bad>: nope")
	var perr Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, Position{}, perr.Position())
}
