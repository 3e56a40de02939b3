package markup

// Visitor is called for each element during Visit.
//
// Calling next visits the element's children. Not calling it skips them.
type Visitor func(element *Element, next func() error) error

// Visit walks element and its descendants depth-first.
func Visit(element *Element, visitor Visitor) error {
	return visitor(element, func() error {
		for _, child := range element.Children {
			if err := Visit(child, visitor); err != nil {
				return err
			}
		}
		return nil
	})
}
