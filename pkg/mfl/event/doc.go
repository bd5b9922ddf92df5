// Package event defines the structural event model consumed by the MFL
// parser, and a yaml.v3-backed Source implementation.
//
// The parser never touches YAML text directly: it pulls an ordered sequence
// of events (stream/document/mapping/sequence/scalar boundaries, each with a
// source position) from a Source. This keeps the lexical layer (indentation,
// quoting, anchors, block and flow styles) a black box behind the Source
// interface.
//
// # Event Sequence
//
// A well-formed input produces:
//
//	StreamStart
//	  DocumentStart ... document content ... DocumentEnd   (one per document)
//	StreamEnd
//
// Collection content is bracketed by MappingStart/MappingEnd or
// SequenceStart/SequenceEnd; everything else is a Scalar carrying its text
// and quoting style.
//
// # Positions
//
// Every event carries a Position with 1-based line and column plus the byte
// offset into the source. TreeSource derives byte offsets from a per-line
// offset table built once over the input.
package event
