// Package ast provides Abstract Syntax Tree (AST) definitions for the Mercator Flow Language (MFL).
//
// The AST represents the parsed structure of an MFL document: process
// configuration, named flows of steps, forms, and the public-flow list.
// All AST nodes preserve source location information for precise error
// reporting.
//
// # Core Types
//
// Document: Root AST node, one per YAML document in a stream
//
// Flow: Named ordered sequence of steps
//
// Step: One element of a flow; holds exactly one StepDefinition
//
// StepDefinition: Closed sum of step kinds (task call, expression, script,
// flow call, checkpoint, if, set, parallel, block, switch, suspend, form
// call, plus the reserved Return variant)
//
// Value: Generic dynamically-typed value (string, boolean, float, integer,
// array, ordered mapping)
//
// Location: Source location (breadcrumb path, byte index, line, column)
//
// # Basic Usage
//
// Parse a document and inspect its flows:
//
//	docs, err := mfl.ParseFile("process.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, flow := range docs[0].Flows {
//	    fmt.Println("Flow:", flow.Name, "steps:", len(flow.Steps))
//	    for _, step := range flow.Steps {
//	        switch def := step.Def.(type) {
//	        case *ast.TaskCall:
//	            fmt.Println("  task:", def.Name)
//	        case *ast.If:
//	            fmt.Println("  if:", def.Expression)
//	        }
//	    }
//	}
//
// Use the visitor pattern for AST traversal:
//
//	type stepCounter struct{ n int }
//
//	func (c *stepCounter) VisitStep(*ast.Step) error { c.n++; return nil }
//
//	// Implement the remaining visitor methods...
//
//	counter := &stepCounter{}
//	if err := ast.Walk(doc, counter); err != nil {
//	    log.Fatal(err)
//	}
//
// # Value Semantics
//
// Mapping values preserve source order and duplicate keys; nothing in this
// package deduplicates. Float values keep the original source text so that
// downstream consumers control when (and whether) the text is converted to a
// binary floating-point representation.
//
// # Immutability
//
// AST nodes should be treated as immutable after construction. The parser
// builds the tree once and consumers inspect it without modification.
package ast
