package ast

// Visitor provides an interface for traversing the AST.
// Implement this interface to perform operations on AST nodes
// (analysis, linting, transformation, etc.).
type Visitor interface {
	VisitDocument(*Document) error
	VisitFlow(*Flow) error
	VisitStep(*Step) error
	VisitForm(*Form) error
}

// Walk traverses the AST starting from the document node and calls the
// visitor for each node, descending into nested step sequences (then/else
// branches, error blocks, switch cases, parallel and try/block bodies). It
// returns the first error encountered, or nil if traversal completes.
func Walk(doc *Document, visitor Visitor) error {
	if err := visitor.VisitDocument(doc); err != nil {
		return err
	}

	for _, flow := range doc.Flows {
		if err := visitor.VisitFlow(flow); err != nil {
			return err
		}
		if err := walkSteps(flow.Steps, visitor); err != nil {
			return err
		}
	}

	for _, form := range doc.Forms {
		if err := visitor.VisitForm(form); err != nil {
			return err
		}
	}

	return nil
}

// walkSteps recursively walks a step sequence and all nested sequences.
func walkSteps(steps []*Step, visitor Visitor) error {
	for _, step := range steps {
		if err := visitor.VisitStep(step); err != nil {
			return err
		}

		var nested [][]*Step
		switch def := step.Def.(type) {
		case *TaskCall:
			nested = append(nested, def.Error)
		case *Expression:
			nested = append(nested, def.Error)
		case *Script:
			nested = append(nested, def.Error)
		case *FlowCall:
			nested = append(nested, def.Error)
		case *Checkpoint:
		case *If:
			nested = append(nested, def.Then, def.Else)
		case *SetVariables:
		case *ParallelBlock:
			nested = append(nested, def.Steps)
		case *Block:
			nested = append(nested, def.Steps, def.Error)
		case *Switch:
			for _, c := range def.Cases {
				nested = append(nested, c.Steps)
			}
			nested = append(nested, def.Default)
		case *Suspend:
		case *FormCall:
		case *Return:
		}

		for _, steps := range nested {
			if err := walkSteps(steps, visitor); err != nil {
				return err
			}
		}
	}
	return nil
}
