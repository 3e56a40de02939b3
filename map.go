package markup

import (
	"fmt"
	"strings"
)

// Mapper function for transforming elements after parsing.
//
// Returning a nil Element removes it from its parent.
type Mapper func(element *Element) (*Element, error)

// Map is an Option that configures the Parser to apply mapping functions to
// each parsed Element.
//
// Children are mapped before their parent. Mappers are applied in order.
func Map(mappers ...Mapper) Option {
	return func(p *Parser) error {
		p.mappers = append(p.mappers, mappers...)
		return nil
	}
}

// Lower is an Option that lower-cases element names and attribute keys.
func Lower() Option {
	return Map(func(element *Element) (*Element, error) {
		element.Name = strings.ToLower(element.Name)
		for i := range element.Attributes {
			element.Attributes[i].Key = strings.ToLower(element.Attributes[i].Key)
		}
		return element, nil
	})
}

func applyMappers(element *Element, mappers []Mapper) (*Element, error) {
	children := element.Children[:0]
	for _, child := range element.Children {
		child, err := applyMappers(child, mappers)
		if err != nil {
			return nil, err
		}
		if child != nil {
			children = append(children, child)
		}
	}
	if len(children) == 0 {
		children = nil
	}
	element.Children = children
	for _, mapper := range mappers {
		name := element.Name
		mapped, err := mapper(element)
		if err != nil {
			return nil, fmt.Errorf("<%s>: %w", name, err)
		}
		if mapped == nil {
			return nil, nil
		}
		element = mapped
	}
	return element, nil
}
