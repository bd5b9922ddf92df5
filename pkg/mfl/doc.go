// Package mfl is the front-end for the Mercator Flow Language (MFL), a
// YAML-hosted workflow-definition language. It compiles human-authored
// process definitions (flows of steps, nested control constructs, forms,
// and configuration) into a typed abstract syntax tree for the
// orchestration engine.
//
// This package is a thin facade; the work happens in the subpackages:
//
//   - event: structural event model and the yaml.v3-backed source
//   - parser: the recursive-descent grammar over the event stream
//   - ast: the typed tree the parser produces
//   - errors: location-aware parse errors
//   - loader: file/directory loading and change watching
//
// # Basic Usage
//
//	docs, err := mfl.ParseFile("process.yaml")
//	if err != nil {
//	    log.Fatal(err) // message includes breadcrumb path and position
//	}
//	for _, doc := range docs {
//	    for _, flow := range doc.Flows {
//	        fmt.Println(flow.Name, len(flow.Steps))
//	    }
//	}
//
// Multi-document streams ("---"-separated) produce one ast.Document per
// document. Parsing is fail-fast: the first syntax or scan error aborts the
// call and no partial AST is returned.
package mfl
