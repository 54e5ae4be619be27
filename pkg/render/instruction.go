package render

import "github.com/goliatone/go-formstate/pkg/schema"

// FieldInstruction is one field-rendering decision: the pre-filled value, the
// resolved CSS class list, and the messages to show inline. Instructions are
// plain data; emitters turn them into markup, prompts, or serialised output.
type FieldInstruction struct {
	Name        string           `json:"name"`
	Label       string           `json:"label,omitempty"`
	Type        schema.FieldType `json:"type"`
	Value       string           `json:"value"`
	Classes     []string         `json:"classes"`
	Errors      []string         `json:"errors,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`
	Help        string           `json:"help,omitempty"`
	Required    bool             `json:"required,omitempty"`
	Options     []schema.Option  `json:"options,omitempty"`
}

// Invalid reports whether the instruction carries inline messages.
func (i FieldInstruction) Invalid() bool {
	return len(i.Errors) > 0
}

// ClassAttr joins the class list into an HTML class attribute value.
func (i FieldInstruction) ClassAttr() string {
	return joinClasses(i.Classes)
}

// View bundles everything an emitter needs for one form render: the ordered
// field instructions plus the aggregate error summary.
type View struct {
	Name    string             `json:"name,omitempty"`
	Title   string             `json:"title,omitempty"`
	Fields  []FieldInstruction `json:"fields"`
	Summary []string           `json:"summary,omitempty"`
}

// Valid reports whether no field instruction carries messages.
func (v View) Valid() bool {
	return len(v.Summary) == 0
}

func joinClasses(classes []string) string {
	switch len(classes) {
	case 0:
		return ""
	case 1:
		return classes[0]
	}
	out := classes[0]
	for _, class := range classes[1:] {
		out += " " + class
	}
	return out
}
