package ast

// Form is a named ordered sequence of form fields.
type Form struct {
	Location Location
	Name     string
	Fields   []*FormField
}

// FormField is one field of a form, with its options as an ordered key/value
// list. Option semantics (type, label, validation constraints) belong to the
// downstream engine, not the parser.
type FormField struct {
	Location Location
	Name     string
	Options  []KV
}

// GetField returns the field with the given name, or nil if not found.
func (f *Form) GetField(name string) *FormField {
	for _, field := range f.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}
