package state

import (
	"fmt"
	"strings"
)

// Snapshot is a read-only view of one submission attempt: the values a user
// posted (possibly invalid) and the validation messages attached to them. A
// snapshot is produced by a validation step, consumed by a renderer, and then
// discarded; it exposes no mutation methods.
type Snapshot struct {
	values map[string]string
	errors FieldErrors
}

// Value returns the submitted value for the named field, or the empty string
// when the field was never set.
func (s *Snapshot) Value(name string) string {
	if s == nil {
		return ""
	}
	return s.values[name]
}

// Lookup returns the submitted value together with a flag indicating whether
// the field was set at all, distinguishing "absent" from "submitted empty".
func (s *Snapshot) Lookup(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	value, ok := s.values[name]
	return value, ok
}

// Errors returns a copy of the per-field error messages.
func (s *Snapshot) Errors() FieldErrors {
	if s == nil {
		return FieldErrors{}
	}
	return s.errors.clone()
}

// FieldMessages returns the messages recorded against the named field,
// defaulting to an empty list for fields without errors.
func (s *Snapshot) FieldMessages(name string) []string {
	if s == nil {
		return nil
	}
	return s.errors.Messages(name)
}

// Invalid reports whether the named field carries at least one message.
func (s *Snapshot) Invalid(name string) bool {
	return s != nil && s.errors.Has(name)
}

// Valid reports whether no field carries any message.
func (s *Snapshot) Valid() bool {
	return s == nil || s.errors.Empty()
}

// FullMessages flattens all messages across fields in declaration order.
func (s *Snapshot) FullMessages() []string {
	if s == nil {
		return nil
	}
	return s.errors.FullMessages()
}

// Builder accumulates submitted values and validation messages, then seals
// them into an immutable Snapshot. Builders are not safe for concurrent use;
// build one per submission attempt.
type Builder struct {
	values map[string]string
	errors FieldErrors
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{values: make(map[string]string)}
}

// Set records the submitted value for a field. Non-string values are
// stringified the way a form post would present them. Later calls win.
func (b *Builder) Set(name string, value any) *Builder {
	name = strings.TrimSpace(name)
	if name == "" {
		return b
	}
	if b.values == nil {
		b.values = make(map[string]string)
	}
	switch v := value.(type) {
	case string:
		b.values[name] = v
	case nil:
		b.values[name] = ""
	default:
		b.values[name] = fmt.Sprint(v)
	}
	return b
}

// SetAll records every entry of values via Set.
func (b *Builder) SetAll(values map[string]any) *Builder {
	for name, value := range values {
		b.Set(name, value)
	}
	return b
}

// AddError attaches one or more messages to the named field.
func (b *Builder) AddError(field string, messages ...string) *Builder {
	b.errors.Add(field, messages...)
	return b
}

// Check attaches the message to the field when ok is false. It reads like an
// assertion at validation call sites.
func (b *Builder) Check(ok bool, field, message string) *Builder {
	if !ok {
		b.AddError(field, message)
	}
	return b
}

// Build seals the accumulated state into a Snapshot. The builder can keep
// accumulating afterwards without affecting snapshots already built.
func (b *Builder) Build() *Snapshot {
	snap := &Snapshot{errors: b.errors.clone()}
	if len(b.values) > 0 {
		snap.values = make(map[string]string, len(b.values))
		for name, value := range b.values {
			snap.values[name] = value
		}
	}
	return snap
}
