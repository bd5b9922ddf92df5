package event

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// maxNodeDepth bounds recursion when flattening node trees, guarding against
// pathological nesting and alias cycles.
const maxNodeDepth = 200

// TreeSource is a Source backed by gopkg.in/yaml.v3. It decodes the input
// one document at a time and flattens each decoded node tree into the
// structural event sequence. Lazy per-document decoding means a malformed
// later document in a multi-document stream fails mid-stream, after the
// events of the preceding documents have been delivered.
//
// Alias nodes are resolved by walking the anchored target, so the consumer
// only ever sees plain mappings, sequences, and scalars.
type TreeSource struct {
	dec     *yaml.Decoder
	lines   []int // Byte offset of each line start
	size    int   // Total input size in bytes
	queue   []item
	started bool
	ended   bool
}

type item struct {
	ev  Event
	pos Position
}

// NewSource creates an event source over a complete MFL input.
func NewSource(data []byte) *TreeSource {
	lines := []int{0}
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &TreeSource{
		dec:   yaml.NewDecoder(bytes.NewReader(data)),
		lines: lines,
		size:  len(data),
	}
}

// Next returns the next event and its position. After StreamEnd it returns
// ErrEndOfStream; decoder failures are returned as-is and are lexical scan
// errors from the consumer's point of view.
func (s *TreeSource) Next() (Event, Position, error) {
	if s.ended {
		return Event{}, Position{}, ErrEndOfStream
	}
	if !s.started {
		s.started = true
		return Event{Kind: StreamStart}, Position{Index: 0, Line: 1, Column: 1}, nil
	}
	if len(s.queue) == 0 {
		if err := s.decodeDocument(); err != nil {
			if errors.Is(err, io.EOF) {
				s.ended = true
				return Event{Kind: StreamEnd}, s.endPosition(), nil
			}
			return Event{}, Position{}, err
		}
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	return next.ev, next.pos, nil
}

// decodeDocument decodes one YAML document and flattens it into the queue.
// Returns io.EOF when the input holds no further documents.
func (s *TreeSource) decodeDocument() error {
	var node yaml.Node
	if err := s.dec.Decode(&node); err != nil {
		return err
	}

	pos := s.position(&node)
	s.emit(Event{Kind: DocumentStart}, pos)
	if node.Kind == yaml.DocumentNode {
		for _, content := range node.Content {
			if err := s.flatten(content, 0); err != nil {
				return err
			}
		}
	} else if err := s.flatten(&node, 0); err != nil {
		return err
	}
	s.emit(Event{Kind: DocumentEnd}, pos)
	return nil
}

// flatten converts one node subtree into events, depth-first.
func (s *TreeSource) flatten(n *yaml.Node, depth int) error {
	if depth > maxNodeDepth {
		return fmt.Errorf("yaml: structure nested deeper than %d levels", maxNodeDepth)
	}

	pos := s.position(n)
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return fmt.Errorf("yaml: unresolved alias *%s at line %d", n.Value, n.Line)
		}
		return s.flatten(n.Alias, depth+1)
	case yaml.ScalarNode:
		s.emit(Event{Kind: Scalar, Value: n.Value, Style: scalarStyle(n)}, pos)
	case yaml.SequenceNode:
		s.emit(Event{Kind: SequenceStart}, pos)
		for _, child := range n.Content {
			if err := s.flatten(child, depth+1); err != nil {
				return err
			}
		}
		// yaml.v3 exposes no end marks; end events reuse the start position.
		s.emit(Event{Kind: SequenceEnd}, pos)
	case yaml.MappingNode:
		s.emit(Event{Kind: MappingStart}, pos)
		for _, child := range n.Content {
			if err := s.flatten(child, depth+1); err != nil {
				return err
			}
		}
		s.emit(Event{Kind: MappingEnd}, pos)
	default:
		return fmt.Errorf("yaml: unsupported node kind %d at line %d", n.Kind, n.Line)
	}
	return nil
}

func (s *TreeSource) emit(ev Event, pos Position) {
	s.queue = append(s.queue, item{ev: ev, pos: pos})
}

// position converts a node's line/column into a full Position, deriving the
// byte index from the per-line offset table.
func (s *TreeSource) position(n *yaml.Node) Position {
	line, col := n.Line, n.Column
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	index := s.size
	if line-1 < len(s.lines) {
		index = s.lines[line-1] + col - 1
		if index > s.size {
			index = s.size
		}
	}
	return Position{Index: index, Line: line, Column: col}
}

func (s *TreeSource) endPosition() Position {
	line := len(s.lines)
	return Position{
		Index:  s.size,
		Line:   line,
		Column: s.size - s.lines[line-1] + 1,
	}
}

func scalarStyle(n *yaml.Node) Style {
	switch {
	case n.Style&yaml.SingleQuotedStyle != 0:
		return SingleQuoted
	case n.Style&yaml.DoubleQuotedStyle != 0:
		return DoubleQuoted
	case n.Style&yaml.LiteralStyle != 0:
		return Literal
	case n.Style&yaml.FoldedStyle != 0:
		return Folded
	default:
		return Plain
	}
}
