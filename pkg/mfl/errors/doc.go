// Package errors provides the error type for MFL parsing.
//
// Every failure in the MFL front-end is a *ParseError with one of two kinds:
//
// KindScan: the underlying YAML scanner rejected the input, or events were
// requested past the end of the stream
//
// KindUnexpectedSyntax: the grammar observed an event, keyword, or
// structural shape that the current rule does not allow
//
// # Basic Usage
//
// Create an error with a location:
//
//	err := errors.Syntaxf(&loc, "Unexpected loop element '%s'", key)
//
// Errors render the breadcrumb path and position for the document author:
//
//	[unexpected syntax] The 'items' field is required in the loop
//	  --> document->'flows'->'myFlow' flow (line 7, column 11)
//
// # Propagation
//
// Errors are fatal: the first one aborts the whole parse and is returned to
// the caller unchanged. There is no accumulation, recovery, or partial AST.
// Tooling that wants per-file aggregation (such as the lint command) collects
// results across independent parse calls instead.
package errors
