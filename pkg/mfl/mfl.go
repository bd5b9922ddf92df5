package mfl

import (
	"fmt"
	"os"

	"mercator-hq/loom/pkg/mfl/ast"
	"mercator-hq/loom/pkg/mfl/parser"
)

// DefaultMaxFileSize is the largest flow definition file ParseFile accepts.
const DefaultMaxFileSize = 10 * 1024 * 1024 // 10MB

// Parse parses a complete MFL input held in memory and returns one AST per
// YAML document, in source order.
func Parse(data []byte) ([]*ast.Document, error) {
	return parser.Parse(data)
}

// ParseString parses a complete MFL input held in a string.
func ParseString(input string) ([]*ast.Document, error) {
	return parser.ParseString(input)
}

// ParseFile reads and parses a flow definition file. Files larger than
// DefaultMaxFileSize are rejected before reading.
func ParseFile(path string) ([]*ast.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access file: %w", err)
	}
	if info.Size() > DefaultMaxFileSize {
		return nil, fmt.Errorf("file size %d exceeds maximum %d bytes", info.Size(), DefaultMaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return parser.Parse(data)
}
