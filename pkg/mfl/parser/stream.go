package parser

import (
	"mercator-hq/loom/pkg/mfl/ast"
	"mercator-hq/loom/pkg/mfl/event"
)

// ParseStream parses a complete event stream into one AST per document, in
// source order. The first error aborts the whole call; there is no partial
// result.
//
// The cursor owns the only mutable parse state, so concurrent calls over
// independent sources are safe.
func ParseStream(src event.Source) ([]*ast.Document, error) {
	c := newCursor(src)

	if _, _, err := c.expect(event.StreamStart); err != nil {
		return nil, err
	}
	docs, err := withContext(c, "document", func(c *cursor) ([]*ast.Document, error) {
		return parseUntil(c, event.StreamEnd, parseDocument)
	})
	if err != nil {
		return nil, err
	}
	if _, _, err := c.expect(event.StreamEnd); err != nil {
		return nil, err
	}
	return docs, nil
}

// Parse parses a complete MFL input held in memory.
func Parse(data []byte) ([]*ast.Document, error) {
	return ParseStream(event.NewSource(data))
}

// ParseString parses a complete MFL input held in a string.
func ParseString(input string) ([]*ast.Document, error) {
	return Parse([]byte(input))
}
