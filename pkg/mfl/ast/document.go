package ast

// Document represents one parsed MFL document. A multi-document YAML stream
// produces one Document per "---"-separated unit, in source order.
//
// All fields are optional; a document declaring none of the recognized
// top-level sections is empty but valid.
type Document struct {
	Configuration *Configuration
	Flows         []*Flow
	Forms         []*Form
	PublicFlows   []string
}

// Configuration holds the document's process configuration as an ordered
// key/value list.
type Configuration struct {
	Location Location
	Values   []KV
}

// Flow is a named ordered sequence of steps (a workflow definition).
type Flow struct {
	Location Location
	Name     string
	Steps    []*Step
}

// GetFlow returns the flow with the given name, or nil if not found.
func (d *Document) GetFlow(name string) *Flow {
	for _, flow := range d.Flows {
		if flow.Name == name {
			return flow
		}
	}
	return nil
}

// HasFlow returns true if the document defines a flow with the given name.
func (d *Document) HasFlow(name string) bool {
	return d.GetFlow(name) != nil
}

// GetForm returns the form with the given name, or nil if not found.
func (d *Document) GetForm(name string) *Form {
	for _, form := range d.Forms {
		if form.Name == name {
			return form
		}
	}
	return nil
}

// IsPublic returns true if the named flow appears in the publicFlows list.
func (d *Document) IsPublic(name string) bool {
	for _, n := range d.PublicFlows {
		if n == name {
			return true
		}
	}
	return false
}

// FlowCount returns the number of flows in the document.
func (d *Document) FlowCount() int {
	return len(d.Flows)
}
