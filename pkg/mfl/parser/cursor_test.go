package parser

import (
	"strings"
	"testing"

	"mercator-hq/loom/pkg/mfl/errors"
	"mercator-hq/loom/pkg/mfl/event"
)

func testCursor(input string) *cursor {
	return newCursor(event.NewSource([]byte(input)))
}

func TestCursor_PeekDoesNotConsume(t *testing.T) {
	c := testCursor("a: 1\n")

	for i := 0; i < 3; i++ {
		ev, _, err := c.peek()
		if err != nil {
			t.Fatalf("peek() #%d failed: %v", i, err)
		}
		if ev.Kind != event.StreamStart {
			t.Fatalf("peek() #%d = %v, want stream start", i, ev.Kind)
		}
	}

	ev, _, err := c.next()
	if err != nil || ev.Kind != event.StreamStart {
		t.Fatalf("next() = %v, %v, want stream start", ev.Kind, err)
	}
	ev, _, err = c.next()
	if err != nil || ev.Kind != event.DocumentStart {
		t.Fatalf("next() = %v, %v, want document start", ev.Kind, err)
	}
}

func TestCursor_ExpectMismatch(t *testing.T) {
	c := testCursor("a: 1\n")

	_, _, err := c.expect(event.MappingStart)
	if err == nil {
		t.Fatal("expect(MappingStart) on stream start succeeded")
	}
	pe, ok := err.(*errors.ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.ParseError", err)
	}
	if pe.Kind != errors.KindUnexpectedSyntax {
		t.Errorf("error kind = %q, want unexpected syntax", pe.Kind)
	}
	if !strings.Contains(pe.Message, "Expected mapping start") {
		t.Errorf("message = %q, want expected/got description", pe.Message)
	}
}

func TestCursor_PeekStringOnNonScalar(t *testing.T) {
	c := testCursor("a: 1\n")
	if _, _, err := c.expect(event.StreamStart); err != nil {
		t.Fatal(err)
	}

	// Next event is document start, not a scalar: peeking a keyword there
	// is itself a syntax error.
	_, _, err := c.peekString()
	if err == nil {
		t.Fatal("peekString() on document start succeeded")
	}
	if pe := err.(*errors.ParseError); pe.Kind != errors.KindUnexpectedSyntax {
		t.Errorf("error kind = %q, want unexpected syntax", pe.Kind)
	}
}

func TestCursor_NextStringEqual(t *testing.T) {
	c := testCursor("flows: {}\n")
	for _, kind := range []event.Kind{event.StreamStart, event.DocumentStart, event.MappingStart} {
		if _, _, err := c.expect(kind); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := c.nextStringEqual("flows"); err != nil {
		t.Errorf("nextStringEqual(\"flows\") failed: %v", err)
	}
}

func TestCursor_ExhaustionIsScanError(t *testing.T) {
	c := testCursor("")
	for _, kind := range []event.Kind{event.StreamStart, event.StreamEnd} {
		if _, _, err := c.expect(kind); err != nil {
			t.Fatal(err)
		}
	}

	_, _, err := c.next()
	if err == nil {
		t.Fatal("next() past stream end succeeded")
	}
	pe, ok := err.(*errors.ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.ParseError", err)
	}
	if pe.Kind != errors.KindScan {
		t.Errorf("error kind = %q, want scan error", pe.Kind)
	}
	if pe.Location != nil {
		t.Errorf("location = %v, want nil (no context established)", pe.Location)
	}
}

func TestCursor_ContextStack(t *testing.T) {
	c := testCursor("")
	c.pushContext("document")
	c.pushContext("flows")

	path := c.currentPath()
	if len(path) != 2 || path[0] != "document" || path[1] != "flows" {
		t.Fatalf("currentPath() = %v", path)
	}

	// Snapshots must not alias the live stack.
	c.popContext()
	if len(path) != 2 {
		t.Error("snapshot changed after pop")
	}
	if got := c.currentPath(); len(got) != 1 || got[0] != "document" {
		t.Errorf("currentPath() after pop = %v", got)
	}

	// withContext pops on error exits too.
	_, err := withContext(c, "'broken' flow", func(c *cursor) (struct{}, error) {
		return struct{}{}, errors.Syntax("boom", nil)
	})
	if err == nil {
		t.Fatal("withContext swallowed the error")
	}
	if got := c.currentPath(); len(got) != 1 {
		t.Errorf("context not popped on error path: %v", got)
	}
}
