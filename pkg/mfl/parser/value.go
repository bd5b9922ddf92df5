package parser

import (
	"strconv"
	"strings"

	"mercator-hq/loom/pkg/mfl/ast"
	"mercator-hq/loom/pkg/mfl/errors"
	"mercator-hq/loom/pkg/mfl/event"
)

// nextValue consumes one value-shaped construct (scalar, sequence, or
// mapping) and returns the decoded Value with its originating position.
func (c *cursor) nextValue() (ast.Value, event.Position, error) {
	ev, pos, err := c.next()
	if err != nil {
		return nil, event.Position{}, err
	}
	value, err := c.decodeValue(ev, pos)
	if err != nil {
		return nil, event.Position{}, err
	}
	return value, pos, nil
}

// decodeValue decodes the construct introduced by an already-consumed event,
// recursing into sequences and mappings.
func (c *cursor) decodeValue(ev event.Event, pos event.Position) (ast.Value, error) {
	switch ev.Kind {
	case event.Scalar:
		return decodeScalar(ev), nil
	case event.SequenceStart:
		items, err := parseUntil(c, event.SequenceEnd, parseValue)
		if err != nil {
			return nil, err
		}
		if _, _, err := c.expect(event.SequenceEnd); err != nil {
			return nil, err
		}
		return ast.Array(items), nil
	case event.MappingStart:
		pairs, err := parseUntil(c, event.MappingEnd, nextKV)
		if err != nil {
			return nil, err
		}
		if _, _, err := c.expect(event.MappingEnd); err != nil {
			return nil, err
		}
		return ast.Mapping(pairs), nil
	default:
		return nil, errors.Syntaxf(c.location(pos), "Expected a value, got %s", describe(ev))
	}
}

// nextKV consumes one "key: value" pair. The key must be a scalar; the value
// is decoded inside a breadcrumb scope named after the key.
func (c *cursor) nextKV() (ast.KV, error) {
	key, pos, err := c.nextString()
	if err != nil {
		return ast.KV{}, err
	}
	value, err := withContext(c, "'"+key+"'", parseValue)
	if err != nil {
		return ast.KV{}, err
	}
	return ast.KV{Location: *c.location(pos), Key: key, Value: value}, nil
}

// parseValue and nextKV in free-function form, for parseUntil.
func parseValue(c *cursor) (ast.Value, error) {
	value, _, err := c.nextValue()
	return value, err
}

func nextKV(c *cursor) (ast.KV, error) {
	return c.nextKV()
}

// decodeScalar applies MFL's coercion rules. Quoted and block scalars are
// always strings. Plain scalars coerce in order: float (text contains '.'
// and parses under the extended float grammar; the original text is kept
// verbatim), 64-bit integer, the exact boolean literals "true"/"false", and
// finally the raw text. YAML's wider yes/no/on/off boolean aliases are
// deliberately not recognized.
func decodeScalar(ev event.Event) ast.Value {
	switch ev.Style {
	case event.SingleQuoted, event.DoubleQuoted, event.Literal, event.Folded:
		return ast.String(ev.Value)
	}

	text := ev.Value
	if strings.Contains(text, ".") && isFloat(text) {
		return ast.Float(text)
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return ast.Integer(n)
	}
	switch text {
	case "true":
		return ast.Boolean(true)
	case "false":
		return ast.Boolean(false)
	}
	return ast.String(text)
}

// isFloat reports whether text parses under the extended float grammar:
// decimal floats plus the infinity and NaN spellings YAML documents use.
func isFloat(text string) bool {
	switch text {
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF",
		"-.inf", "-.Inf", "-.INF",
		".nan", ".NaN", ".NAN", "NaN":
		return true
	}
	_, err := strconv.ParseFloat(text, 64)
	return err == nil
}
