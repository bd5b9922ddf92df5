package errors

import (
	"strings"
	"testing"

	"mercator-hq/loom/pkg/mfl/ast"
)

func TestParseError_WithLocation(t *testing.T) {
	loc := &ast.Location{
		Path:   []string{"document", "'flows'", "'main' flow"},
		Line:   3,
		Column: 5,
	}
	err := Syntax("Unknown step 'foobar'", loc)

	got := err.Error()
	if !strings.HasPrefix(got, "[unexpected syntax] Unknown step 'foobar'") {
		t.Errorf("Error() = %q", got)
	}
	if !strings.Contains(got, "document->'flows'->'main' flow (line 3, column 5)") {
		t.Errorf("Error() = %q, want breadcrumb and position", got)
	}
}

func TestParseError_WithoutLocation(t *testing.T) {
	err := Scan("unexpected end of stream", nil)

	got := err.Error()
	if got != "[scan error] unexpected end of stream" {
		t.Errorf("Error() = %q", got)
	}
	if strings.Contains(got, "-->") {
		t.Errorf("Error() = %q, want no location arrow", got)
	}
}

func TestParseError_PathOnlyLocation(t *testing.T) {
	// Scan failures mid-parse carry breadcrumbs but no source position.
	err := Scan("unexpected end of stream", &ast.Location{Path: []string{"document", "flows"}})

	got := err.Error()
	if !strings.Contains(got, "--> document->flows") {
		t.Errorf("Error() = %q, want breadcrumb path", got)
	}
	if strings.Contains(got, "line 0") {
		t.Errorf("Error() = %q, want no zero position", got)
	}
}

func TestSyntaxf(t *testing.T) {
	err := Syntaxf(nil, "Unexpected loop element '%s'", "bogus")

	if err.Kind != KindUnexpectedSyntax {
		t.Errorf("Kind = %q", err.Kind)
	}
	if err.Message != "Unexpected loop element 'bogus'" {
		t.Errorf("Message = %q", err.Message)
	}
}
