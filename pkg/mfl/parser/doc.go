// Package parser implements the recursive-descent structural parser for the
// Mercator Flow Language (MFL).
//
// The parser consumes an ordered sequence of structural events from an
// event.Source and produces one ast.Document per YAML document in the
// stream. It is organized in three layers:
//
//   - cursor: one-event lookahead over the source, typed "expect" helpers,
//     and the diagnostic breadcrumb stack used to build error locations
//   - value decoder: turns scalars, sequences, and mappings into typed
//     ast.Value trees, applying MFL's plain-scalar coercion rules
//   - grammar: one function per language construct (documents, flows, the
//     step kinds and their modifiers, forms), mirroring the grammar shape
//
// # Step Dispatch
//
// A step is a mapping. Its "name" key sets the step's display name; exactly
// one step-kind key must appear (task, expr, script, call, checkpoint, if,
// set, parallel, try/block, switch, suspend, form, or one of the sugar
// keywords log/logYaml/throw which desugar into task calls). Any other key,
// or the absence of a kind key, is a syntax error. Duplicate modifier keys
// are not rejected; the later occurrence wins.
//
// # Error Behavior
//
// All failures are *errors.ParseError values and are fatal to the parse:
// the first error aborts ParseStream and carries the breadcrumb path and
// position of the failure point.
//
// # Concurrency
//
// A parse call is single-threaded and synchronous. Each call builds its own
// cursor, so parsing independent inputs from multiple goroutines is safe.
package parser
