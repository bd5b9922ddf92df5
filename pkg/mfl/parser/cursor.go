package parser

import (
	"mercator-hq/loom/pkg/mfl/ast"
	"mercator-hq/loom/pkg/mfl/errors"
	"mercator-hq/loom/pkg/mfl/event"
)

// cursor wraps an event source with one-event lookahead and the diagnostic
// breadcrumb stack. It is exclusively owned by a single parse invocation;
// parallel parsing of independent inputs requires one cursor each.
type cursor struct {
	src    event.Source
	peeked *lookahead
	path   []string
}

type lookahead struct {
	ev  event.Event
	pos event.Position
}

func newCursor(src event.Source) *cursor {
	return &cursor{src: src}
}

// next consumes and returns the next event. Source exhaustion and lexical
// failures both surface as scan errors.
func (c *cursor) next() (event.Event, event.Position, error) {
	if p := c.peeked; p != nil {
		c.peeked = nil
		return p.ev, p.pos, nil
	}
	ev, pos, err := c.src.Next()
	if err != nil {
		return event.Event{}, event.Position{}, errors.Scan(err.Error(), c.scanLocation())
	}
	return ev, pos, nil
}

// peek returns the next event without consuming it. Repeatable.
func (c *cursor) peek() (event.Event, event.Position, error) {
	if p := c.peeked; p != nil {
		return p.ev, p.pos, nil
	}
	ev, pos, err := c.src.Next()
	if err != nil {
		return event.Event{}, event.Position{}, errors.Scan(err.Error(), c.scanLocation())
	}
	c.peeked = &lookahead{ev: ev, pos: pos}
	return ev, pos, nil
}

// expect consumes one event and requires it to be of the given kind.
func (c *cursor) expect(kind event.Kind) (event.Event, event.Position, error) {
	ev, pos, err := c.next()
	if err != nil {
		return event.Event{}, event.Position{}, err
	}
	if ev.Kind != kind {
		return event.Event{}, event.Position{}, errors.Syntaxf(c.location(pos),
			"Expected %s, got %s", kind, describe(ev))
	}
	return ev, pos, nil
}

// nextString consumes one event and requires it to be a scalar, returning
// its raw text.
func (c *cursor) nextString() (string, event.Position, error) {
	ev, pos, err := c.next()
	if err != nil {
		return "", event.Position{}, err
	}
	if ev.Kind != event.Scalar {
		return "", event.Position{}, errors.Syntaxf(c.location(pos),
			"Expected a string value, got %s", describe(ev))
	}
	return ev.Value, pos, nil
}

// nextStringEqual consumes one scalar and requires its text to equal the
// given literal.
func (c *cursor) nextStringEqual(literal string) (event.Position, error) {
	text, pos, err := c.nextString()
	if err != nil {
		return event.Position{}, err
	}
	if text != literal {
		return event.Position{}, errors.Syntaxf(c.location(pos),
			"Expected '%s', got '%s'", literal, text)
	}
	return pos, nil
}

// peekString returns the raw text of the next scalar without consuming it.
// Peeking a non-scalar where a keyword is expected is itself a syntax error.
func (c *cursor) peekString() (string, event.Position, error) {
	ev, pos, err := c.peek()
	if err != nil {
		return "", event.Position{}, err
	}
	if ev.Kind != event.Scalar {
		return "", event.Position{}, errors.Syntaxf(c.location(pos),
			"Expected to peek a scalar, got %s", describe(ev))
	}
	return ev.Value, pos, nil
}

// peekKey is the lenient variant used by keyword-dispatch loops: it reports
// ok=false (without error) when the next event is not a scalar, so the loop
// can stop at the enclosing mapping end.
func (c *cursor) peekKey() (key string, pos event.Position, ok bool, err error) {
	ev, pos, err := c.peek()
	if err != nil || ev.Kind != event.Scalar {
		return "", pos, false, err
	}
	return ev.Value, pos, true, nil
}

// pushContext adds a breadcrumb label. Every push must be paired with a pop
// on all exit paths; parser functions use defer, or withContext, for that.
func (c *cursor) pushContext(label string) {
	c.path = append(c.path, label)
}

func (c *cursor) popContext() {
	c.path = c.path[:len(c.path)-1]
}

// currentPath returns a snapshot of the breadcrumb stack.
func (c *cursor) currentPath() []string {
	if len(c.path) == 0 {
		return nil
	}
	return append([]string(nil), c.path...)
}

// location builds a full Location from a position and the current
// breadcrumbs.
func (c *cursor) location(pos event.Position) *ast.Location {
	return &ast.Location{
		Path:   c.currentPath(),
		Index:  pos.Index,
		Line:   pos.Line,
		Column: pos.Column,
	}
}

// scanLocation is the best-effort location for scan failures: breadcrumbs
// without a position, or nil before any context was entered.
func (c *cursor) scanLocation() *ast.Location {
	if len(c.path) == 0 {
		return nil
	}
	return &ast.Location{Path: c.currentPath()}
}

// withContext runs fn inside a breadcrumb scope, popping on every exit path.
func withContext[T any](c *cursor, label string, fn func(*cursor) (T, error)) (T, error) {
	c.pushContext(label)
	defer c.popContext()
	return fn(c)
}

// parseUntil parses items with fn until the next event is of the end kind.
// The loop always parses at least one item, so an immediately-empty sequence
// or mapping is a structural error reported by fn.
func parseUntil[T any](c *cursor, end event.Kind, fn func(*cursor) (T, error)) ([]T, error) {
	var items []T
	for {
		item, err := fn(c)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		ev, _, err := c.peek()
		if err != nil {
			return nil, err
		}
		if ev.Kind == end {
			return items, nil
		}
	}
}

// describe renders an event for "expected X, got Y" messages.
func describe(ev event.Event) string {
	if ev.Kind == event.Scalar {
		return "scalar '" + ev.Value + "'"
	}
	return ev.Kind.String()
}
