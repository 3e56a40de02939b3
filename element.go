package markup

import (
	"strings"
)

// Attribute is a key="value" pair on an element.
type Attribute struct {
	Key   string
	Value string
}

// Element is a node in a parsed document.
//
// Attributes are in document order and may contain duplicate keys.
type Element struct {
	Name       string
	Attributes []Attribute
	Children   []*Element
}

// Attr returns the value of the first attribute named key.
func (e *Element) Attr(key string) (string, bool) {
	for _, attr := range e.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// String renders the element and its children back to markup.
//
// Elements without children are rendered as self-closing tags.
func (e *Element) String() string {
	w := &strings.Builder{}
	e.write(w)
	return w.String()
}

func (e *Element) write(w *strings.Builder) {
	w.WriteByte('<')
	w.WriteString(e.Name)
	for _, attr := range e.Attributes {
		w.WriteByte(' ')
		w.WriteString(attr.Key)
		w.WriteString(`="`)
		w.WriteString(attr.Value)
		w.WriteByte('"')
	}
	if len(e.Children) == 0 {
		w.WriteString("/>")
		return
	}
	w.WriteByte('>')
	for _, child := range e.Children {
		child.write(w)
	}
	w.WriteString("</")
	w.WriteString(e.Name)
	w.WriteByte('>')
}
