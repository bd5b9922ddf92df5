// Loom is the front-end toolchain for the Mercator Flow Language (MFL).
//
// It compiles YAML-hosted workflow definitions (flows of steps, nested
// control constructs, forms, and configuration) into a typed AST and
// reports precise, breadcrumbed diagnostics for malformed documents.
//
// Usage:
//
//	# Validate a single flow definition
//	loom lint --file process.yaml
//
//	# Validate a directory of definitions
//	loom lint --dir flows/
//
//	# JSON output for CI/CD
//	loom lint --file process.yaml --format json
//
//	# Re-validate on every change
//	loom lint --dir flows/ --watch
//
//	# Show version information
//	loom version
package main

func main() {
	Execute()
}
