package schema

import (
	"fmt"
	"strings"
)

// FieldType enumerates the display types the renderer understands. They map
// onto HTML control kinds rather than wire types.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypePassword FieldType = "password"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeSelect   FieldType = "select"
	FieldTypeHidden   FieldType = "hidden"
	FieldTypeNumber   FieldType = "number"
)

var knownFieldTypes = map[FieldType]struct{}{
	FieldTypeText:     {},
	FieldTypeEmail:    {},
	FieldTypePassword: {},
	FieldTypeTextarea: {},
	FieldTypeCheckbox: {},
	FieldTypeSelect:   {},
	FieldTypeHidden:   {},
	FieldTypeNumber:   {},
}

// Option is a single choice offered by a select field.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Field describes one input of a form. NoEcho marks sensitive fields whose
// submitted value must never be rendered back, regardless of snapshot
// content; password fields default to NoEcho during normalisation.
type Field struct {
	Name        string            `json:"name" yaml:"name"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Type        FieldType         `json:"type,omitempty" yaml:"type,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Help        string            `json:"help,omitempty" yaml:"help,omitempty"`
	Required    bool              `json:"required,omitempty" yaml:"required,omitempty"`
	NoEcho      bool              `json:"noEcho,omitempty" yaml:"noEcho,omitempty"`
	Options     []Option          `json:"options,omitempty" yaml:"options,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Schema is the ordered field list one form renders. Field order is the
// declaration order renderers and error summaries follow.
type Schema struct {
	Name   string  `json:"name" yaml:"name"`
	Title  string  `json:"title,omitempty" yaml:"title,omitempty"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Field returns the descriptor for the given name.
func (s Schema) Field(name string) (Field, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Names returns the field names in declaration order.
func (s Schema) Names() []string {
	if len(s.Fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		names = append(names, field.Name)
	}
	return names
}

// Validate checks structural well-formedness: non-empty trimmed field names,
// no duplicates, known display types.
func (s Schema) Validate() error {
	seen := make(map[string]struct{}, len(s.Fields))
	for i, field := range s.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("schema: field %d has an empty name", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("schema: duplicate field %q", name)
		}
		seen[name] = struct{}{}

		if field.Type != "" {
			if _, ok := knownFieldTypes[field.Type]; !ok {
				return fmt.Errorf("schema: field %q has unknown type %q", name, field.Type)
			}
		}
	}
	return nil
}

// Normalize fills derived defaults on every field: trimmed names, text as the
// fallback type, labels derived from names, NoEcho forced on for password
// fields. It returns a copy; the receiver is untouched.
func (s Schema) Normalize() Schema {
	out := Schema{Name: strings.TrimSpace(s.Name), Title: strings.TrimSpace(s.Title)}
	if len(s.Fields) == 0 {
		return out
	}
	out.Fields = make([]Field, 0, len(s.Fields))
	for _, field := range s.Fields {
		out.Fields = append(out.Fields, NormalizeField(field))
	}
	return out
}

// NormalizeField applies per-field defaults. See Schema.Normalize.
func NormalizeField(field Field) Field {
	field.Name = strings.TrimSpace(field.Name)
	if field.Type == "" {
		field.Type = FieldTypeText
	}
	if field.Type == FieldTypePassword {
		field.NoEcho = true
	}
	if strings.TrimSpace(field.Label) == "" {
		field.Label = DefaultLabeler(field.Name)
	}
	return field
}
