// Package markup parses a minimal XML-like markup dialect into a tree of Elements.
//
// A document is a single element. Elements are either self-closing or contain
// zero or more child elements followed by a closing tag with the same name:
//
//	<top label="Top">
//	    <semi-bottom label="Bottom"/>
//	    <middle>
//	        <bottom label="Another bottom"/>
//	    </middle>
//	</top>
//
// Attribute values are double-quoted and may not contain a double quote.
// There is no text content, no comments and no namespaces.
//
// The grammar is assembled from the combinators in the combinator package.
// The individual rules are exported so they can be reused in other grammars.
// Parser wraps them with positional errors, a nesting limit and optional
// tracing:
//
//	parser := markup.MustNew(markup.MaxDepth(64))
//	root, err := parser.ParseString("doc.xml", source)
package markup
