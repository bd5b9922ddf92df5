package event

import "errors"

// Kind identifies a structural event produced by the event source.
type Kind int

const (
	StreamStart Kind = iota
	StreamEnd
	DocumentStart
	DocumentEnd
	MappingStart
	MappingEnd
	SequenceStart
	SequenceEnd
	Scalar
)

// String returns the event kind name as used in diagnostics.
func (k Kind) String() string {
	switch k {
	case StreamStart:
		return "stream start"
	case StreamEnd:
		return "stream end"
	case DocumentStart:
		return "document start"
	case DocumentEnd:
		return "document end"
	case MappingStart:
		return "mapping start"
	case MappingEnd:
		return "mapping end"
	case SequenceStart:
		return "sequence start"
	case SequenceEnd:
		return "sequence end"
	case Scalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Style describes how a scalar was written in the source. The value decoder
// uses it to decide whether plain-scalar coercion applies.
type Style int

const (
	Plain Style = iota
	SingleQuoted
	DoubleQuoted
	Literal
	Folded
)

// Position is a location in the source text.
type Position struct {
	Index  int // Byte offset (0-based)
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// Event is one structural event. Value and Style are meaningful only for
// Scalar events.
type Event struct {
	Kind  Kind
	Value string
	Style Style
}

// Source produces an ordered sequence of structural events. A well-formed
// sequence is StreamStart, one or more document event groups, StreamEnd;
// requesting events past StreamEnd returns ErrEndOfStream. Any other error
// is a lexical-level scan failure.
type Source interface {
	Next() (Event, Position, error)
}

// ErrEndOfStream is returned by Source.Next after the StreamEnd event has
// been consumed.
var ErrEndOfStream = errors.New("event source exhausted")
