package ast

// Step is one element of a flow. The optional Name comes from the step's
// "name" key; Def holds the step's single definition.
type Step struct {
	Location Location
	Name     string // Optional display name ("" if absent)
	Def      StepDefinition
}

// StepDefinition is the closed sum of MFL step kinds. A step holds exactly
// one definition; consumers are expected to switch exhaustively over the
// variant set so that adding or removing a kind forces an update.
//
// The variants are: TaskCall, Expression, Script, FlowCall, Checkpoint, If,
// SetVariables, ParallelBlock, Block, Switch, Suspend, FormCall, and the
// reserved Return.
type StepDefinition interface {
	stepDefinition()
}

// TaskCall invokes a named task. The "log", "logYaml", and "throw" step
// keywords are sugar that desugars into TaskCall during parsing.
type TaskCall struct {
	Name         string  // Task name
	Input        Value   // "in" parameters
	Output       Value   // "out" parameters
	Error        []*Step // "error" fallback steps
	IgnoreErrors *bool   // "ignoreErrors" option (nil if absent)
	Loop         *Loop
	Meta         []KV
	Retry        *Retry
}

// Expression evaluates an expression.
type Expression struct {
	Expr   string
	Output Value
	Error  []*Step
	Meta   []KV
}

// Script runs an inline or referenced script.
type Script struct {
	LanguageOrRef string // Language name or reference to an external script
	Body          string // Inline script body ("" if absent)
	Input         Value
	Output        Value
	Error         []*Step
	Loop          *Loop
	Meta          []KV
	Retry         *Retry
}

// FlowCall invokes another flow by name.
type FlowCall struct {
	FlowName string
	Input    Value
	Output   Value
	Error    []*Step
	Loop     *Loop
	Meta     []KV
	Retry    *Retry
}

// Checkpoint records a named checkpoint.
type Checkpoint struct {
	Name string
	Meta []KV
}

// If branches on a condition expression. Then is mandatory in the grammar;
// Else may be nil.
type If struct {
	Expression string
	Then       []*Step
	Else       []*Step
	Meta       []KV
}

// SetVariables assigns process variables from an inline mapping.
type SetVariables struct {
	Vars []KV
	Meta []KV
}

// ParallelBlock runs a nested step sequence in parallel.
type ParallelBlock struct {
	Steps  []*Step
	Output Value
	Meta   []KV
}

// Block groups a nested step sequence, introduced by either the "try" or the
// "block" keyword.
type Block struct {
	Steps  []*Step
	Output Value
	Error  []*Step
	Loop   *Loop
	Meta   []KV
}

// Switch dispatches on an expression over ordered case labels.
type Switch struct {
	Expression string
	Cases      []SwitchCase
	Default    []*Step // nil if no "default" block
	Meta       []KV
}

// SwitchCase pairs one case label with its step sequence.
type SwitchCase struct {
	Label Value
	Steps []*Step
}

// Suspend suspends the process until the named event arrives.
type Suspend struct {
	Event string
	Meta  []KV
}

// FormCall presents a form and waits for its submission.
type FormCall struct {
	FormName        string
	Yield           *bool // "yield" option (nil if absent)
	SaveSubmittedBy *bool // "saveSubmittedBy" option (nil if absent)
	RunAs           Value
	Values          Value
	Fields          []*FormField // Inline field overrides
	Meta            []KV
}

// Return is reserved in the step-kind union for flow termination. No grammar
// keyword produces it yet; it exists so that downstream consumers switching
// over StepDefinition already account for it.
type Return struct{}

// Loop attaches iteration to a TaskCall, Script, FlowCall, or Block step.
// Items is mandatory in the grammar.
type Loop struct {
	Location    Location
	Items       Value
	Mode        LoopMode // LoopModeUnset if absent
	Parallelism Value
}

// LoopMode selects how loop iterations are executed.
type LoopMode string

const (
	LoopModeUnset    LoopMode = ""
	LoopModeSerial   LoopMode = "serial"
	LoopModeParallel LoopMode = "parallel"
)

// Retry attaches a re-execution policy to a TaskCall, Script, FlowCall, or
// Block step. All fields are optional.
type Retry struct {
	Location Location
	Times    Value
	Delay    Value
	Input    Value
}

func (*TaskCall) stepDefinition()      {}
func (*Expression) stepDefinition()    {}
func (*Script) stepDefinition()        {}
func (*FlowCall) stepDefinition()      {}
func (*Checkpoint) stepDefinition()    {}
func (*If) stepDefinition()            {}
func (*SetVariables) stepDefinition()  {}
func (*ParallelBlock) stepDefinition() {}
func (*Block) stepDefinition()         {}
func (*Switch) stepDefinition()        {}
func (*Suspend) stepDefinition()       {}
func (*FormCall) stepDefinition()      {}
func (*Return) stepDefinition()        {}
