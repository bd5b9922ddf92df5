package errors

import (
	"fmt"
	"strings"

	"mercator-hq/loom/pkg/mfl/ast"
)

// Kind categorizes a parse error. There are exactly two kinds: failures of
// the underlying lexical scanner and structural mismatches detected by the
// grammar itself.
type Kind string

const (
	// KindScan is raised when the event source signals malformed input at
	// the lexical level, or when events are requested past the end of the
	// stream.
	KindScan Kind = "scan error"

	// KindUnexpectedSyntax is raised by the grammar when the observed
	// event, scalar text, or structural shape does not match the current
	// rule: wrong event kind, unrecognized keyword, missing required
	// field, malformed enumerated value, or an empty mandatory step
	// sequence.
	KindUnexpectedSyntax Kind = "unexpected syntax"
)

// ParseError is the single error type produced by the MFL front-end.
// Location is nil only in context-free situations, e.g. when scanning fails
// before any document context was entered.
//
// Every error is fatal to the parse that produced it: there is no recovery
// and no partial AST. Callers are expected to surface Message and Location
// verbatim to the document author.
type ParseError struct {
	Kind     Kind
	Message  string
	Location *ast.Location
}

// Error implements the error interface.
// It returns a formatted message with the breadcrumb path and position.
func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s", e.Kind, e.Message))
	if e.Location != nil {
		sb.WriteString(fmt.Sprintf("\n  --> %s", e.Location))
	}
	return sb.String()
}

// Scan creates a lexical-level error at the given location.
func Scan(msg string, loc *ast.Location) *ParseError {
	return &ParseError{Kind: KindScan, Message: msg, Location: loc}
}

// Syntax creates a structural error at the given location.
func Syntax(msg string, loc *ast.Location) *ParseError {
	return &ParseError{Kind: KindUnexpectedSyntax, Message: msg, Location: loc}
}

// Syntaxf creates a structural error with a formatted message.
func Syntaxf(loc *ast.Location, format string, args ...any) *ParseError {
	return Syntax(fmt.Sprintf(format, args...), loc)
}
