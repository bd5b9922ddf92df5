package parser

import (
	"strings"
	"testing"

	"mercator-hq/loom/pkg/mfl/ast"
	"mercator-hq/loom/pkg/mfl/errors"
)

// parseOneStep parses a document holding a single flow with a single step
// and returns that step.
func parseOneStep(t *testing.T, flowBody string) *ast.Step {
	t.Helper()
	docs, err := ParseString("flows:\n  main:\n" + flowBody)
	if err != nil {
		t.Fatalf("ParseString() failed: %v", err)
	}
	if len(docs) != 1 || len(docs[0].Flows) != 1 || len(docs[0].Flows[0].Steps) != 1 {
		t.Fatalf("want exactly one flow with one step, got %+v", docs)
	}
	return docs[0].Flows[0].Steps[0]
}

// expectSyntaxError parses input and requires an UnexpectedSyntax failure
// whose message contains fragment.
func expectSyntaxError(t *testing.T, input, fragment string) *errors.ParseError {
	t.Helper()
	_, err := ParseString(input)
	if err == nil {
		t.Fatalf("ParseString() succeeded, want syntax error containing %q", fragment)
	}
	pe, ok := err.(*errors.ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.ParseError", err)
	}
	if pe.Kind != errors.KindUnexpectedSyntax {
		t.Errorf("error kind = %q, want unexpected syntax", pe.Kind)
	}
	if !strings.Contains(pe.Message, fragment) {
		t.Errorf("message = %q, want it to contain %q", pe.Message, fragment)
	}
	return pe
}

func TestParseStep_TaskCall(t *testing.T) {
	step := parseOneStep(t, `    - name: fetch
      task: fetchOrders
      in:
        source: warehouse
      out: orders
      ignoreErrors: true
      error:
        - log: failed
`)

	if step.Name != "fetch" {
		t.Errorf("step name = %q, want %q", step.Name, "fetch")
	}
	task, ok := step.Def.(*ast.TaskCall)
	if !ok {
		t.Fatalf("step def = %T, want *ast.TaskCall", step.Def)
	}
	if task.Name != "fetchOrders" {
		t.Errorf("task name = %q, want %q", task.Name, "fetchOrders")
	}
	if in, ok := task.Input.(ast.Mapping); !ok || len(in) != 1 || in[0].Key != "source" {
		t.Errorf("task input = %#v", task.Input)
	}
	if task.Output != ast.String("orders") {
		t.Errorf("task output = %#v", task.Output)
	}
	if task.IgnoreErrors == nil || !*task.IgnoreErrors {
		t.Error("ignoreErrors not parsed")
	}
	if len(task.Error) != 1 {
		t.Fatalf("len(Error) = %d, want 1", len(task.Error))
	}
}

func TestParseStep_TaskCallWithLoopAndRetry(t *testing.T) {
	step := parseOneStep(t, `    - task: fanOut
      loop:
        items: ${orders}
        mode: parallel
        parallelism: 4
      retry:
        times: 3
        delay: 10
`)

	task := step.Def.(*ast.TaskCall)
	if task.Loop == nil {
		t.Fatal("loop not parsed")
	}
	if task.Loop.Items != ast.String("${orders}") {
		t.Errorf("loop items = %#v", task.Loop.Items)
	}
	if task.Loop.Mode != ast.LoopModeParallel {
		t.Errorf("loop mode = %q, want parallel", task.Loop.Mode)
	}
	if task.Loop.Parallelism != ast.Integer(4) {
		t.Errorf("loop parallelism = %#v", task.Loop.Parallelism)
	}
	if task.Retry == nil || task.Retry.Times != ast.Integer(3) || task.Retry.Delay != ast.Integer(10) {
		t.Errorf("retry = %+v", task.Retry)
	}
	if task.Retry.Input != nil {
		t.Errorf("retry input = %#v, want nil", task.Retry.Input)
	}
}

func TestParseStep_Expression(t *testing.T) {
	step := parseOneStep(t, "    - expr: ${1 + 2}\n      out: sum\n")

	expr := step.Def.(*ast.Expression)
	if expr.Expr != "${1 + 2}" {
		t.Errorf("expr = %q", expr.Expr)
	}
	if expr.Output != ast.String("sum") {
		t.Errorf("out = %#v", expr.Output)
	}
}

func TestParseStep_Script(t *testing.T) {
	step := parseOneStep(t, `    - script: js
      body: |
        console.log("hi");
      in:
        x: 1
`)

	script := step.Def.(*ast.Script)
	if script.LanguageOrRef != "js" {
		t.Errorf("languageOrRef = %q", script.LanguageOrRef)
	}
	if !strings.Contains(script.Body, "console.log") {
		t.Errorf("body = %q", script.Body)
	}
	if _, ok := script.Input.(ast.Mapping); !ok {
		t.Errorf("input = %#v", script.Input)
	}
}

func TestParseStep_FlowCall(t *testing.T) {
	step := parseOneStep(t, "    - call: otherFlow\n      in:\n        k: v\n      out: result\n")

	call := step.Def.(*ast.FlowCall)
	if call.FlowName != "otherFlow" {
		t.Errorf("flow name = %q", call.FlowName)
	}
	if call.Output != ast.String("result") {
		t.Errorf("out = %#v", call.Output)
	}
}

func TestParseStep_Checkpoint(t *testing.T) {
	step := parseOneStep(t, "    - checkpoint: afterFetch\n")

	cp := step.Def.(*ast.Checkpoint)
	if cp.Name != "afterFetch" {
		t.Errorf("checkpoint name = %q", cp.Name)
	}
}

func TestParseStep_If(t *testing.T) {
	step := parseOneStep(t, `    - if: ${x > 0}
      then:
        - log: positive
      else:
        - log: negative
`)

	cond := step.Def.(*ast.If)
	if cond.Expression != "${x > 0}" {
		t.Errorf("expression = %q", cond.Expression)
	}
	if len(cond.Then) != 1 || len(cond.Else) != 1 {
		t.Errorf("then/else lengths = %d/%d, want 1/1", len(cond.Then), len(cond.Else))
	}
}

func TestParseStep_IfRequiresThen(t *testing.T) {
	expectSyntaxError(t, `flows:
  main:
    - if: ${x}
      else:
        - log: nope
`, "The 'then' steps are required in 'if' block")
}

func TestParseStep_SetVariables(t *testing.T) {
	step := parseOneStep(t, "    - set:\n        a: 1\n        b: two\n")

	set := step.Def.(*ast.SetVariables)
	if len(set.Vars) != 2 {
		t.Fatalf("len(Vars) = %d, want 2", len(set.Vars))
	}
	if set.Vars[0].Key != "a" || set.Vars[0].Value != ast.Integer(1) {
		t.Errorf("vars[0] = %+v", set.Vars[0])
	}
	if set.Vars[1].Key != "b" || set.Vars[1].Value != ast.String("two") {
		t.Errorf("vars[1] = %+v", set.Vars[1])
	}
}

func TestParseStep_ParallelBlock(t *testing.T) {
	step := parseOneStep(t, `    - parallel:
        - log: one
        - log: two
      out: results
`)

	par := step.Def.(*ast.ParallelBlock)
	if len(par.Steps) != 2 {
		t.Errorf("len(Steps) = %d, want 2", len(par.Steps))
	}
	if par.Output != ast.String("results") {
		t.Errorf("out = %#v", par.Output)
	}
}

func TestParseStep_Block(t *testing.T) {
	for _, keyword := range []string{"try", "block"} {
		step := parseOneStep(t, "    - "+keyword+`:
        - log: inside
      error:
        - log: recovered
`)

		block, ok := step.Def.(*ast.Block)
		if !ok {
			t.Fatalf("%s: step def = %T, want *ast.Block", keyword, step.Def)
		}
		if len(block.Steps) != 1 || len(block.Error) != 1 {
			t.Errorf("%s: steps/error lengths = %d/%d", keyword, len(block.Steps), len(block.Error))
		}
	}
}

func TestParseStep_Switch(t *testing.T) {
	step := parseOneStep(t, `    - switch: ${code}
      1:
        - log: one
      2:
        - log: two
      default:
        - log: other
`)

	sw := step.Def.(*ast.Switch)
	if sw.Expression != "${code}" {
		t.Errorf("expression = %q", sw.Expression)
	}
	if len(sw.Cases) != 2 {
		t.Fatalf("len(Cases) = %d, want 2", len(sw.Cases))
	}
	if sw.Cases[0].Label != ast.Integer(1) || sw.Cases[1].Label != ast.Integer(2) {
		t.Errorf("case labels = %v, %v, want Integer(1), Integer(2)", sw.Cases[0].Label, sw.Cases[1].Label)
	}
	if len(sw.Default) != 1 {
		t.Errorf("len(Default) = %d, want 1", len(sw.Default))
	}
}

func TestParseStep_SwitchRequiresCaseOrDefault(t *testing.T) {
	expectSyntaxError(t, "flows:\n  main:\n    - switch: ${code}\n      meta:\n        a: 1\n",
		"The 'switch' block requires at least one case and/or the 'default' block")
}

func TestParseStep_Suspend(t *testing.T) {
	step := parseOneStep(t, "    - suspend: paymentReceived\n")

	suspend := step.Def.(*ast.Suspend)
	if suspend.Event != "paymentReceived" {
		t.Errorf("event = %q", suspend.Event)
	}
}

func TestParseStep_FormCall(t *testing.T) {
	step := parseOneStep(t, `    - form: approval
      yield: true
      saveSubmittedBy: false
      values:
        hint: please review
      fields:
        - comment:
            type: string
`)

	call := step.Def.(*ast.FormCall)
	if call.FormName != "approval" {
		t.Errorf("form name = %q", call.FormName)
	}
	if call.Yield == nil || !*call.Yield {
		t.Error("yield not parsed")
	}
	if call.SaveSubmittedBy == nil || *call.SaveSubmittedBy {
		t.Error("saveSubmittedBy not parsed")
	}
	if len(call.Fields) != 1 || call.Fields[0].Name != "comment" {
		t.Errorf("fields = %+v", call.Fields)
	}
}

func TestParseStep_LogSugar(t *testing.T) {
	step := parseOneStep(t, "    - log: hello\n")

	task, ok := step.Def.(*ast.TaskCall)
	if !ok {
		t.Fatalf("step def = %T, want *ast.TaskCall (log desugars)", step.Def)
	}
	if task.Name != "log" {
		t.Errorf("task name = %q, want log", task.Name)
	}
	in := task.Input.(ast.Mapping)
	if v, _ := in.Get("msg"); v != ast.String("hello") {
		t.Errorf("msg = %#v, want \"hello\"", v)
	}
}

func TestParseStep_LogYamlSugar(t *testing.T) {
	step := parseOneStep(t, "    - logYaml: hello\n")

	task := step.Def.(*ast.TaskCall)
	in := task.Input.(ast.Mapping)
	if v, _ := in.Get("msg"); v != ast.String("hello") {
		t.Errorf("msg = %#v", v)
	}
	if v, _ := in.Get("format"); v != ast.String("yaml") {
		t.Errorf("format = %#v, want \"yaml\"", v)
	}
}

func TestParseStep_ThrowSugar(t *testing.T) {
	step := parseOneStep(t, "    - throw: somethingBroke\n")

	task := step.Def.(*ast.TaskCall)
	if task.Name != "throw" {
		t.Errorf("task name = %q, want throw", task.Name)
	}
	in := task.Input.(ast.Mapping)
	if v, _ := in.Get("exception"); v != ast.String("somethingBroke") {
		t.Errorf("exception = %#v", v)
	}
}

func TestParseStep_UnknownStepKey(t *testing.T) {
	expectSyntaxError(t, "flows:\n  main:\n    - foobar: 1\n", "Unknown step 'foobar'")
}

func TestParseStep_MissingKindKey(t *testing.T) {
	expectSyntaxError(t, "flows:\n  main:\n    - name: only-a-name\n", "Expected a step")
}

func TestParseStep_UnexpectedModifier(t *testing.T) {
	expectSyntaxError(t, "flows:\n  main:\n    - checkpoint: cp\n      out: nope\n",
		"Unexpected checkpoint element 'out'")
}

func TestParseStep_DuplicateModifierLaterWins(t *testing.T) {
	step := parseOneStep(t, "    - task: t\n      out: first\n      out: second\n")

	task := step.Def.(*ast.TaskCall)
	if task.Output != ast.String("second") {
		t.Errorf("out = %#v, want the later occurrence", task.Output)
	}
}

func TestParseLoop_MissingItems(t *testing.T) {
	pe := expectSyntaxError(t, `flows:
  main:
    - task: t
      loop:
        mode: serial
`, "The 'items' field is required in the loop")

	if pe.Location == nil {
		t.Fatal("error has no location")
	}
	if pe.Location.Line < 4 {
		t.Errorf("error line = %d, want a line inside the loop block", pe.Location.Line)
	}
}

func TestParseLoop_BadMode(t *testing.T) {
	expectSyntaxError(t, `flows:
  main:
    - task: t
      loop:
        items: ${xs}
        mode: sideways
`, "Unexpected loop mode 'sideways'")
}

func TestParseSteps_BooleanStrictness(t *testing.T) {
	// "yes" is not an MFL boolean, so ignoreErrors rejects it.
	expectSyntaxError(t, "flows:\n  main:\n    - task: t\n      ignoreErrors: yes\n",
		"Expected a bool value")
}

func TestParseDocument_UnknownTopLevel(t *testing.T) {
	expectSyntaxError(t, "processes:\n  main: []\n", "Unexpected top-level element 'processes'")
}

func TestParseDocument_Sections(t *testing.T) {
	docs, err := ParseString(`configuration:
  runtime: v2
flows:
  main:
    - log: hi
forms:
  approval:
    - decision:
        type: string
publicFlows:
  - main
`)
	if err != nil {
		t.Fatalf("ParseString() failed: %v", err)
	}

	doc := docs[0]
	if doc.Configuration == nil || len(doc.Configuration.Values) != 1 {
		t.Errorf("configuration = %+v", doc.Configuration)
	}
	if !doc.HasFlow("main") {
		t.Error("flow 'main' missing")
	}
	if doc.GetForm("approval") == nil {
		t.Error("form 'approval' missing")
	}
	if !doc.IsPublic("main") {
		t.Error("publicFlows missing 'main'")
	}
}

func TestParseStream_MultiDocument(t *testing.T) {
	docs, err := ParseString("---\nflows:\n  first:\n    - log: one\n---\nflows:\n  second:\n    - log: two\n")
	if err != nil {
		t.Fatalf("ParseString() failed: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("len(docs) = %d, want 2", len(docs))
	}
	if !docs[0].HasFlow("first") || !docs[1].HasFlow("second") {
		t.Errorf("flows out of order: %+v, %+v", docs[0].Flows, docs[1].Flows)
	}
}

func TestParseSteps_EmptySequenceRejected(t *testing.T) {
	_, err := ParseString("flows:\n  main: []\n")
	if err == nil {
		t.Fatal("empty step sequence parsed successfully")
	}
	if pe := err.(*errors.ParseError); pe.Kind != errors.KindUnexpectedSyntax {
		t.Errorf("error kind = %q, want unexpected syntax", pe.Kind)
	}
}

func TestErrors_BreadcrumbIdentifiesStep(t *testing.T) {
	pe := expectSyntaxError(t, `flows:
  myFlow:
    - log: one
    - log: two
    - foobar: 1
`, "Unknown step 'foobar'")

	if pe.Location == nil {
		t.Fatal("error has no location")
	}
	path := strings.Join(pe.Location.Path, "->")
	if !strings.Contains(path, "myFlow") {
		t.Errorf("breadcrumb %q does not name the flow", path)
	}
	if !strings.Contains(path, "step 3") {
		t.Errorf("breadcrumb %q does not identify the step", path)
	}
}

func TestErrors_BreadcrumbPopsAfterSiblings(t *testing.T) {
	// The error is inside the second flow; the first flow's labels must not
	// linger on the breadcrumb stack.
	pe := expectSyntaxError(t, `flows:
  goodFlow:
    - log: fine
  badFlow:
    - foobar: 1
`, "Unknown step 'foobar'")

	path := strings.Join(pe.Location.Path, "->")
	if strings.Contains(path, "goodFlow") {
		t.Errorf("breadcrumb %q leaked a sibling flow's context", path)
	}
	if !strings.Contains(path, "badFlow") {
		t.Errorf("breadcrumb %q does not name the failing flow", path)
	}
}

func TestParseStream_ScanError(t *testing.T) {
	_, err := ParseString("flows:\n  main:\n    - log: \"unterminated\n")
	if err == nil {
		t.Fatal("malformed input parsed successfully")
	}
	pe, ok := err.(*errors.ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.ParseError", err)
	}
	if pe.Kind != errors.KindScan {
		t.Errorf("error kind = %q, want scan error", pe.Kind)
	}
}
