package parser

import (
	"fmt"

	"mercator-hq/loom/pkg/mfl/ast"
	"mercator-hq/loom/pkg/mfl/errors"
	"mercator-hq/loom/pkg/mfl/event"
)

func parseBool(c *cursor) (bool, error) {
	value, pos, err := c.nextValue()
	if err != nil {
		return false, err
	}
	b, ok := value.(ast.Boolean)
	if !ok {
		return false, errors.Syntaxf(c.location(pos), "Expected a bool value, got %s", value)
	}
	return bool(b), nil
}

func parseString(c *cursor) (string, error) {
	text, _, err := c.nextString()
	return text, err
}

func parseStringList(c *cursor) ([]string, error) {
	if _, _, err := c.expect(event.SequenceStart); err != nil {
		return nil, err
	}
	values, err := parseUntil(c, event.SequenceEnd, parseString)
	if err != nil {
		return nil, err
	}
	if _, _, err := c.expect(event.SequenceEnd); err != nil {
		return nil, err
	}
	return values, nil
}

// parseMeta parses a "meta" block: an ordered mapping of arbitrary pairs.
func parseMeta(c *cursor) ([]ast.KV, error) {
	if _, _, err := c.expect(event.MappingStart); err != nil {
		return nil, err
	}
	pairs, err := parseUntil(c, event.MappingEnd, nextKV)
	if err != nil {
		return nil, err
	}
	if _, _, err := c.expect(event.MappingEnd); err != nil {
		return nil, err
	}
	return pairs, nil
}

func parseLoopMode(c *cursor) (ast.LoopMode, error) {
	mode, pos, err := c.nextString()
	if err != nil {
		return ast.LoopModeUnset, err
	}
	switch mode {
	case "parallel":
		return ast.LoopModeParallel, nil
	case "serial":
		return ast.LoopModeSerial, nil
	default:
		return ast.LoopModeUnset, errors.Syntaxf(c.location(pos),
			"Unexpected loop mode '%s'. Only 'parallel' and 'serial' are supported.", mode)
	}
}

func parseLoop(c *cursor) (*ast.Loop, error) {
	_, pos, err := c.expect(event.MappingStart)
	if err != nil {
		return nil, err
	}
	location := c.location(pos)

	lp := &ast.Loop{Location: *location}
	var haveItems bool

	for {
		key, _, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "items":
			lp.Items, err = withContext(c, "loop items", parseValue)
			haveItems = true
		case "mode":
			lp.Mode, err = withContext(c, "loop mode", parseLoopMode)
		case "parallelism":
			lp.Parallelism, err = withContext(c, "loop parallelism", parseValue)
		default:
			return nil, errors.Syntaxf(location, "Unexpected loop element '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}
	if _, _, err := c.expect(event.MappingEnd); err != nil {
		return nil, err
	}

	if !haveItems {
		return nil, errors.Syntax("The 'items' field is required in the loop", location)
	}
	return lp, nil
}

func parseRetry(c *cursor) (*ast.Retry, error) {
	_, pos, err := c.expect(event.MappingStart)
	if err != nil {
		return nil, err
	}
	location := c.location(pos)

	retry := &ast.Retry{Location: *location}
	for {
		key, _, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "times":
			retry.Times, err = withContext(c, "retry 'times' option", parseValue)
		case "delay":
			retry.Delay, err = withContext(c, "retry delay", parseValue)
		case "in":
			retry.Input, err = withContext(c, "retry input", parseValue)
		default:
			return nil, errors.Syntaxf(location, "Unexpected retry element '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}
	if _, _, err := c.expect(event.MappingEnd); err != nil {
		return nil, err
	}
	return retry, nil
}

func parseTaskCall(c *cursor) (ast.StepDefinition, error) {
	name, pos, err := c.nextString()
	if err != nil {
		return nil, err
	}
	c.pushContext(fmt.Sprintf("'%s' task call", name))
	defer c.popContext()

	location := c.location(pos)
	task := &ast.TaskCall{Name: name}

	for {
		key, _, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "in":
			task.Input, err = withContext(c, "'in' parameters", parseValue)
		case "out":
			task.Output, err = withContext(c, "'out' parameters", parseValue)
		case "error":
			task.Error, err = withContext(c, "'error' block", parseNestedSteps)
		case "ignoreErrors":
			var b bool
			b, err = withContext(c, "'ignoreErrors' option", parseBool)
			task.IgnoreErrors = &b
		case "loop":
			task.Loop, err = withContext(c, "'loop' option", parseLoop)
		case "meta":
			task.Meta, err = withContext(c, "'meta' block", parseMeta)
		case "retry":
			task.Retry, err = withContext(c, "'retry' option", parseRetry)
		default:
			return nil, errors.Syntaxf(location, "Unexpected task call element '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return task, nil
}

// parseSimpleTaskCall handles the sugar steps (log, logYaml, throw): a
// leading value that becomes a single named input parameter of a fixed task,
// plus an optional meta block.
func parseSimpleTaskCall(c *cursor, taskName, parameterName string, extraInput []ast.KV) (ast.StepDefinition, error) {
	c.pushContext(taskName)
	defer c.popContext()

	value, pos, err := c.nextValue()
	if err != nil {
		return nil, err
	}
	location := c.location(pos)

	var meta []ast.KV
	for {
		key, _, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "meta":
			meta, err = withContext(c, "'meta' block", parseMeta)
		default:
			return nil, errors.Syntaxf(location, "Unexpected %s element '%s'", taskName, key)
		}
		if err != nil {
			return nil, err
		}
	}

	input := ast.Mapping{{Location: *location, Key: parameterName, Value: value}}
	for _, kv := range extraInput {
		kv.Location = *location
		input = append(input, kv)
	}

	return &ast.TaskCall{Name: taskName, Input: input, Meta: meta}, nil
}

func parseLog(c *cursor) (ast.StepDefinition, error) {
	return parseSimpleTaskCall(c, "log", "msg", nil)
}

func parseLogYAML(c *cursor) (ast.StepDefinition, error) {
	return parseSimpleTaskCall(c, "log", "msg", []ast.KV{{Key: "format", Value: ast.String("yaml")}})
}

func parseThrow(c *cursor) (ast.StepDefinition, error) {
	return parseSimpleTaskCall(c, "throw", "exception", nil)
}

func parseExpr(c *cursor) (ast.StepDefinition, error) {
	expr, pos, err := c.nextString()
	if err != nil {
		return nil, err
	}
	c.pushContext(fmt.Sprintf("expression '%s'", expr))
	defer c.popContext()

	location := c.location(pos)
	step := &ast.Expression{Expr: expr}

	for {
		key, _, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "out":
			step.Output, err = withContext(c, "'out' parameters", parseValue)
		case "error":
			step.Error, err = withContext(c, "'error' block", parseNestedSteps)
		case "meta":
			step.Meta, err = withContext(c, "'meta' block", parseMeta)
		default:
			return nil, errors.Syntaxf(location, "Unexpected expr step element '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return step, nil
}

func parseScript(c *cursor) (ast.StepDefinition, error) {
	languageOrRef, pos, err := c.nextString()
	if err != nil {
		return nil, err
	}
	c.pushContext(fmt.Sprintf("script '%s'", languageOrRef))
	defer c.popContext()

	location := c.location(pos)
	script := &ast.Script{LanguageOrRef: languageOrRef}

	for {
		key, _, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "body":
			script.Body, err = withContext(c, "script body", parseString)
		case "in":
			script.Input, err = withContext(c, "'in' parameters", parseValue)
		case "out":
			script.Output, err = withContext(c, "'out' parameters", parseValue)
		case "error":
			script.Error, err = withContext(c, "'error' block", parseNestedSteps)
		case "loop":
			script.Loop, err = withContext(c, "'loop' option", parseLoop)
		case "meta":
			script.Meta, err = withContext(c, "'meta' block", parseMeta)
		case "retry":
			script.Retry, err = withContext(c, "'retry' option", parseRetry)
		default:
			return nil, errors.Syntaxf(location, "Unexpected script step element '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return script, nil
}

func parseFlowCall(c *cursor) (ast.StepDefinition, error) {
	flowName, pos, err := c.nextString()
	if err != nil {
		return nil, err
	}
	c.pushContext(fmt.Sprintf("call '%s'", flowName))
	defer c.popContext()

	location := c.location(pos)
	call := &ast.FlowCall{FlowName: flowName}

	for {
		key, _, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "in":
			call.Input, err = withContext(c, "'in' parameters", parseValue)
		case "out":
			call.Output, err = withContext(c, "'out' parameters", parseValue)
		case "error":
			call.Error, err = withContext(c, "'error' block", parseNestedSteps)
		case "loop":
			call.Loop, err = withContext(c, "'loop' option", parseLoop)
		case "meta":
			call.Meta, err = withContext(c, "'meta' block", parseMeta)
		case "retry":
			call.Retry, err = withContext(c, "'retry' option", parseRetry)
		default:
			return nil, errors.Syntaxf(location, "Unexpected flow call element '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return call, nil
}

func parseCheckpoint(c *cursor) (ast.StepDefinition, error) {
	name, pos, err := c.nextString()
	if err != nil {
		return nil, err
	}
	c.pushContext(fmt.Sprintf("checkpoint '%s'", name))
	defer c.popContext()

	location := c.location(pos)
	checkpoint := &ast.Checkpoint{Name: name}

	for {
		key, _, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "meta":
			checkpoint.Meta, err = withContext(c, "'meta' block", parseMeta)
		default:
			return nil, errors.Syntaxf(location, "Unexpected checkpoint element '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return checkpoint, nil
}

func parseIf(c *cursor) (ast.StepDefinition, error) {
	expression, pos, err := c.nextString()
	if err != nil {
		return nil, err
	}
	c.pushContext(fmt.Sprintf("if '%s'", expression))
	defer c.popContext()

	location := c.location(pos)
	step := &ast.If{Expression: expression}
	var haveThen bool

	for {
		key, _, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "then":
			step.Then, err = withContext(c, "'then' block", parseNestedSteps)
			haveThen = true
		case "else":
			step.Else, err = withContext(c, "'else' block", parseNestedSteps)
		case "meta":
			step.Meta, err = withContext(c, "'meta' block", parseMeta)
		default:
			return nil, errors.Syntaxf(location, "Unexpected if block element '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}

	if !haveThen {
		return nil, errors.Syntax("The 'then' steps are required in 'if' block", location)
	}
	return step, nil
}

func parseSetVariables(c *cursor) (ast.StepDefinition, error) {
	c.pushContext("set")
	defer c.popContext()

	_, pos, err := c.expect(event.MappingStart)
	if err != nil {
		return nil, err
	}
	vars, err := parseUntil(c, event.MappingEnd, nextKV)
	if err != nil {
		return nil, err
	}
	if _, _, err := c.expect(event.MappingEnd); err != nil {
		return nil, err
	}

	location := c.location(pos)
	step := &ast.SetVariables{Vars: vars}

	for {
		key, _, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "meta":
			step.Meta, err = withContext(c, "'meta' block", parseMeta)
		default:
			return nil, errors.Syntaxf(location, "Unexpected set element '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return step, nil
}

func parseParallelBlock(c *cursor) (ast.StepDefinition, error) {
	c.pushContext("'parallel' block")
	defer c.popContext()

	steps, pos, err := parseSteps(c)
	if err != nil {
		return nil, err
	}

	location := c.location(pos)
	block := &ast.ParallelBlock{Steps: steps}

	for {
		key, _, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "out":
			block.Output, err = withContext(c, "'out' parameters", parseValue)
		case "meta":
			block.Meta, err = withContext(c, "'meta' block", parseMeta)
		default:
			return nil, errors.Syntaxf(location, "Unexpected parallel block element '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return block, nil
}

// parseBlock handles both the "try" and "block" keywords.
func parseBlock(c *cursor, keyword string) (ast.StepDefinition, error) {
	c.pushContext(fmt.Sprintf("'%s' block", keyword))
	defer c.popContext()

	steps, pos, err := parseSteps(c)
	if err != nil {
		return nil, err
	}

	location := c.location(pos)
	block := &ast.Block{Steps: steps}

	for {
		key, _, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "out":
			block.Output, err = withContext(c, "'out' parameters", parseValue)
		case "error":
			block.Error, err = withContext(c, "'error' block", parseNestedSteps)
		case "loop":
			block.Loop, err = withContext(c, "'loop' option", parseLoop)
		case "meta":
			block.Meta, err = withContext(c, "'meta' block", parseMeta)
		default:
			return nil, errors.Syntaxf(location, "Unexpected block element '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return block, nil
}

func parseSwitch(c *cursor) (ast.StepDefinition, error) {
	expression, pos, err := c.nextString()
	if err != nil {
		return nil, err
	}
	c.pushContext(fmt.Sprintf("switch '%s'", expression))
	defer c.popContext()

	location := c.location(pos)
	step := &ast.Switch{Expression: expression}
	var haveDefault bool

	// Case labels are scalars decoded with full value coercion, so integer
	// and boolean labels keep their types. "default" and "meta" route
	// specially; the loop stops at the enclosing mapping end.
	for {
		ev, _, err := c.peek()
		if err != nil {
			return nil, err
		}
		if ev.Kind != event.Scalar {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		label := decodeScalar(ev)

		switch {
		case label == ast.String("default"):
			step.Default, err = withContext(c, "'default' block", parseNestedSteps)
			haveDefault = true
		case label == ast.String("meta"):
			step.Meta, err = withContext(c, "'meta' block", parseMeta)
		default:
			var steps []*ast.Step
			steps, err = withContext(c, fmt.Sprintf("case %s steps", label), parseNestedSteps)
			step.Cases = append(step.Cases, ast.SwitchCase{Label: label, Steps: steps})
		}
		if err != nil {
			return nil, err
		}
	}

	if !haveDefault && len(step.Cases) == 0 {
		return nil, errors.Syntax(
			"The 'switch' block requires at least one case and/or the 'default' block", location)
	}
	return step, nil
}

func parseSuspend(c *cursor) (ast.StepDefinition, error) {
	eventName, pos, err := c.nextString()
	if err != nil {
		return nil, err
	}
	c.pushContext(fmt.Sprintf("suspend on '%s'", eventName))
	defer c.popContext()

	location := c.location(pos)
	suspend := &ast.Suspend{Event: eventName}

	for {
		key, _, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "meta":
			suspend.Meta, err = withContext(c, "'meta' block", parseMeta)
		default:
			return nil, errors.Syntaxf(location, "Unexpected suspend element '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return suspend, nil
}

func parseFormCall(c *cursor) (ast.StepDefinition, error) {
	formName, pos, err := c.nextString()
	if err != nil {
		return nil, err
	}
	c.pushContext(fmt.Sprintf("'%s' form call", formName))
	defer c.popContext()

	location := c.location(pos)
	call := &ast.FormCall{FormName: formName}

	for {
		key, _, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "yield":
			var b bool
			b, err = withContext(c, "'yield' option", parseBool)
			call.Yield = &b
		case "saveSubmittedBy":
			var b bool
			b, err = withContext(c, "'saveSubmittedBy' option", parseBool)
			call.SaveSubmittedBy = &b
		case "runAs":
			call.RunAs, err = withContext(c, "'runAs' option", parseValue)
		case "values":
			call.Values, err = withContext(c, "'values' option", parseValue)
		case "fields":
			call.Fields, err = withContext(c, "'fields' option", parseFormFields)
		case "meta":
			call.Meta, err = withContext(c, "'meta' block", parseMeta)
		default:
			return nil, errors.Syntaxf(location, "Unexpected form call element '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return call, nil
}

// parseStep parses one step: a mapping holding an optional "name" key and
// exactly one step-kind key.
func parseStep(c *cursor) (*ast.Step, error) {
	_, pos, err := c.expect(event.MappingStart)
	if err != nil {
		return nil, err
	}

	location := c.location(pos)
	step := &ast.Step{Location: *location}

	for {
		key, _, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "name":
			step.Name, _, err = c.nextString()
		case "call":
			step.Def, err = parseFlowCall(c)
		case "checkpoint":
			step.Def, err = parseCheckpoint(c)
		case "expr":
			step.Def, err = parseExpr(c)
		case "if":
			step.Def, err = parseIf(c)
		case "log":
			step.Def, err = parseLog(c)
		case "logYaml":
			step.Def, err = parseLogYAML(c)
		case "parallel":
			step.Def, err = parseParallelBlock(c)
		case "script":
			step.Def, err = parseScript(c)
		case "set":
			step.Def, err = parseSetVariables(c)
		case "switch":
			step.Def, err = parseSwitch(c)
		case "task":
			step.Def, err = parseTaskCall(c)
		case "throw":
			step.Def, err = parseThrow(c)
		case "try", "block":
			step.Def, err = parseBlock(c, key)
		case "suspend":
			step.Def, err = parseSuspend(c)
		case "form":
			step.Def, err = parseFormCall(c)
		default:
			return nil, errors.Syntaxf(location, "Unknown step '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}

	if _, _, err := c.expect(event.MappingEnd); err != nil {
		return nil, err
	}
	if step.Def == nil {
		return nil, errors.Syntax("Expected a step", location)
	}
	return step, nil
}

// parseSteps parses a mandatory, non-empty step sequence and returns the
// position of its opening sequence event. Each step is parsed inside a
// "step N" breadcrumb scope.
func parseSteps(c *cursor) ([]*ast.Step, event.Position, error) {
	_, pos, err := c.expect(event.SequenceStart)
	if err != nil {
		return nil, event.Position{}, err
	}

	var steps []*ast.Step
	for {
		step, err := withContext(c, fmt.Sprintf("step %d", len(steps)+1), parseStep)
		if err != nil {
			return nil, event.Position{}, err
		}
		steps = append(steps, step)
		ev, _, err := c.peek()
		if err != nil {
			return nil, event.Position{}, err
		}
		if ev.Kind == event.SequenceEnd {
			break
		}
	}

	if _, _, err := c.expect(event.SequenceEnd); err != nil {
		return nil, event.Position{}, err
	}
	return steps, pos, nil
}

// parseNestedSteps is parseSteps without the position, for withContext.
func parseNestedSteps(c *cursor) ([]*ast.Step, error) {
	steps, _, err := parseSteps(c)
	return steps, err
}

func parseFormField(c *cursor) (*ast.FormField, error) {
	if _, _, err := c.expect(event.MappingStart); err != nil {
		return nil, err
	}

	name, pos, err := c.nextString()
	if err != nil {
		return nil, err
	}
	c.pushContext(fmt.Sprintf("'%s' field", name))

	var options []ast.KV
	err = func() error {
		if _, _, err := c.expect(event.MappingStart); err != nil {
			return err
		}
		options, err = parseUntil(c, event.MappingEnd, nextKV)
		if err != nil {
			return err
		}
		_, _, err = c.expect(event.MappingEnd)
		return err
	}()
	c.popContext()
	if err != nil {
		return nil, err
	}

	if _, _, err := c.expect(event.MappingEnd); err != nil {
		return nil, err
	}
	return &ast.FormField{Location: *c.location(pos), Name: name, Options: options}, nil
}

func parseFormFields(c *cursor) ([]*ast.FormField, error) {
	if _, _, err := c.expect(event.SequenceStart); err != nil {
		return nil, err
	}
	fields, err := parseUntil(c, event.SequenceEnd, parseFormField)
	if err != nil {
		return nil, err
	}
	if _, _, err := c.expect(event.SequenceEnd); err != nil {
		return nil, err
	}
	return fields, nil
}

func parseForm(c *cursor) (*ast.Form, error) {
	name, pos, err := c.nextString()
	if err != nil {
		return nil, err
	}
	fields, err := withContext(c, fmt.Sprintf("'%s' form", name), parseFormFields)
	if err != nil {
		return nil, err
	}
	return &ast.Form{Location: *c.location(pos), Name: name, Fields: fields}, nil
}

func parseForms(c *cursor) ([]*ast.Form, error) {
	if _, _, err := c.expect(event.MappingStart); err != nil {
		return nil, err
	}
	forms, err := parseUntil(c, event.MappingEnd, parseForm)
	if err != nil {
		return nil, err
	}
	if _, _, err := c.expect(event.MappingEnd); err != nil {
		return nil, err
	}
	return forms, nil
}

func parseFlow(c *cursor) (*ast.Flow, error) {
	name, pos, err := c.nextString()
	if err != nil {
		return nil, err
	}
	steps, err := withContext(c, fmt.Sprintf("'%s' flow", name), parseNestedSteps)
	if err != nil {
		return nil, err
	}
	return &ast.Flow{Location: *c.location(pos), Name: name, Steps: steps}, nil
}

func parseFlows(c *cursor) ([]*ast.Flow, error) {
	if _, _, err := c.expect(event.MappingStart); err != nil {
		return nil, err
	}
	flows, err := parseUntil(c, event.MappingEnd, parseFlow)
	if err != nil {
		return nil, err
	}
	if _, _, err := c.expect(event.MappingEnd); err != nil {
		return nil, err
	}
	return flows, nil
}

func parseConfiguration(c *cursor) (*ast.Configuration, error) {
	_, pos, err := c.expect(event.MappingStart)
	if err != nil {
		return nil, err
	}
	values, err := parseUntil(c, event.MappingEnd, nextKV)
	if err != nil {
		return nil, err
	}
	if _, _, err := c.expect(event.MappingEnd); err != nil {
		return nil, err
	}
	return &ast.Configuration{Location: *c.location(pos), Values: values}, nil
}

// parseDocument parses one document: a mapping of the recognized top-level
// sections (configuration, flows, forms, publicFlows).
func parseDocument(c *cursor) (*ast.Document, error) {
	if _, _, err := c.expect(event.DocumentStart); err != nil {
		return nil, err
	}
	if _, _, err := c.expect(event.MappingStart); err != nil {
		return nil, err
	}

	doc := &ast.Document{}
	for {
		key, pos, ok, err := c.peekKey()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, _, err := c.next(); err != nil {
			return nil, err
		}
		switch key {
		case "configuration":
			doc.Configuration, err = withContext(c, "configuration", parseConfiguration)
		case "flows":
			doc.Flows, err = withContext(c, "flows", parseFlows)
		case "forms":
			doc.Forms, err = withContext(c, "forms", parseForms)
		case "publicFlows":
			doc.PublicFlows, err = withContext(c, "publicFlows", parseStringList)
		default:
			return nil, errors.Syntaxf(c.location(pos), "Unexpected top-level element '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}

	if _, _, err := c.expect(event.MappingEnd); err != nil {
		return nil, err
	}
	if _, _, err := c.expect(event.DocumentEnd); err != nil {
		return nil, err
	}
	return doc, nil
}
