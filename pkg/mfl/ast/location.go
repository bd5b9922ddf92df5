package ast

import (
	"fmt"
	"strings"
)

// Location represents the source location of an AST node in the original
// document. Path is the diagnostic breadcrumb trail describing the parse
// nesting at the time the node was read (for example
// "document->'flows'->'myFlow' flow"); it is used only in error messages.
type Location struct {
	Path   []string // Breadcrumb labels, outermost first
	Index  int      // Byte offset into the source (0-based)
	Line   int      // Line number (1-based)
	Column int      // Column number (1-based)
}

// String returns a human-readable representation of the location.
// Format: "document->'flows'->'myFlow' flow (line 3, column 5)". The position
// clause is omitted for path-only locations, where no source position is
// known.
func (l Location) String() string {
	path := strings.Join(l.Path, "->")
	if !l.IsValid() {
		return path
	}
	pos := fmt.Sprintf("line %d, column %d", l.Line, l.Column)
	if path == "" {
		return pos
	}
	return path + " (" + pos + ")"
}

// IsValid returns true if the location has valid position information.
func (l Location) IsValid() bool {
	return l.Line > 0 && l.Column > 0
}
