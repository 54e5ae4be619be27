package render

import (
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/state"
)

// Default class decisions follow the classic server-side form convention:
// every control wrapper carries the base class, invalid ones additionally
// carry the error marker.
const (
	DefaultFieldClass = "field"
	DefaultErrorClass = "field_with_errors"
)

// Renderer maps a snapshot and a field schema into rendering instructions.
// It is a pure value: Render and Summary never fail, never mutate their
// inputs, and a Renderer produced by New without options is ready to use.
type Renderer struct {
	fieldClass string
	errorClass string
	extra      []string
}

// New constructs a Renderer with the default class decisions, applying any
// provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{
		fieldClass: DefaultFieldClass,
		errorClass: DefaultErrorClass,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.fieldClass == "" {
		r.fieldClass = DefaultFieldClass
	}
	if r.errorClass == "" {
		r.errorClass = DefaultErrorClass
	}
	return r
}

// Render produces one instruction per schema field, in schema order. Fields
// absent from the schema are never rendered, even when the snapshot carries
// errors for them. The pre-filled value is the snapshot value unless the
// descriptor is NoEcho, in which case it is always empty. The class list is
// the base class (plus any extras) with the error marker appended exactly
// once when the field's error list is non-empty.
func (r *Renderer) Render(snapshot *state.Snapshot, s schema.Schema) []FieldInstruction {
	if len(s.Fields) == 0 {
		return nil
	}

	instructions := make([]FieldInstruction, 0, len(s.Fields))
	for _, descriptor := range s.Fields {
		field := schema.NormalizeField(descriptor)
		instructions = append(instructions, r.instruction(snapshot, field))
	}
	return instructions
}

// Summary returns the flattened Full Messages list for the snapshot, empty
// when no field has errors. Ordering follows the snapshot's field declaration
// order, then message order within each field.
func (r *Renderer) Summary(snapshot *state.Snapshot) []string {
	return snapshot.FullMessages()
}

// View bundles Render and Summary for emitters that consume both.
func (r *Renderer) View(snapshot *state.Snapshot, s schema.Schema) View {
	return View{
		Name:    s.Name,
		Title:   s.Title,
		Fields:  r.Render(snapshot, s),
		Summary: r.Summary(snapshot),
	}
}

func (r *Renderer) instruction(snapshot *state.Snapshot, field schema.Field) FieldInstruction {
	instruction := FieldInstruction{
		Name:        field.Name,
		Label:       field.Label,
		Type:        field.Type,
		Placeholder: field.Placeholder,
		Help:        field.Help,
		Required:    field.Required,
		Options:     field.Options,
		Errors:      snapshot.FieldMessages(field.Name),
		Classes:     r.classes(snapshot.Invalid(field.Name)),
	}
	if !field.NoEcho {
		instruction.Value = snapshot.Value(field.Name)
	}
	return instruction
}

func (r *Renderer) classes(invalid bool) []string {
	classes := make([]string, 0, len(r.extra)+2)
	classes = appendClass(classes, r.fieldClass)
	for _, class := range r.extra {
		classes = appendClass(classes, class)
	}
	if invalid {
		classes = appendClass(classes, r.errorClass)
	}
	return classes
}

// appendClass keeps the class list free of blanks and duplicates so the error
// marker appears at most once no matter how the renderer was configured.
func appendClass(classes []string, class string) []string {
	if class == "" {
		return classes
	}
	for _, existing := range classes {
		if existing == class {
			return classes
		}
	}
	return append(classes, class)
}
