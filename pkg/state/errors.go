package state

import "strings"

// FieldErrors collects human-readable validation messages keyed by field
// name. Fields keep the order in which they first received a message, and
// messages keep the order they were added in, so derived output such as
// FullMessages stays deterministic across renders.
//
// The zero value is ready to use.
type FieldErrors struct {
	order   []string
	byField map[string][]string
}

// Add appends one or more messages to the named field. Messages are trimmed;
// empty strings and exact duplicates within the same field are dropped. An
// Add call that contributes no messages does not register the field.
func (e *FieldErrors) Add(field string, messages ...string) {
	field = strings.TrimSpace(field)
	if field == "" {
		return
	}

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if containsMessage(e.byField[field], trimmed) {
			continue
		}
		if e.byField == nil {
			e.byField = make(map[string][]string)
		}
		if _, seen := e.byField[field]; !seen {
			e.order = append(e.order, field)
		}
		e.byField[field] = append(e.byField[field], trimmed)
	}
}

// Messages returns the messages recorded for the named field. Fields that
// never received a message yield an empty slice, not nil panics; the slice is
// a copy and safe for callers to retain.
func (e *FieldErrors) Messages(field string) []string {
	if e == nil || len(e.byField[field]) == 0 {
		return nil
	}
	out := make([]string, len(e.byField[field]))
	copy(out, e.byField[field])
	return out
}

// Has reports whether the named field has at least one message.
func (e *FieldErrors) Has(field string) bool {
	return e != nil && len(e.byField[field]) > 0
}

// Fields returns the field names in declaration order.
func (e *FieldErrors) Fields() []string {
	if e == nil || len(e.order) == 0 {
		return nil
	}
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Len reports the total number of recorded messages across all fields.
func (e *FieldErrors) Len() int {
	if e == nil {
		return 0
	}
	total := 0
	for _, messages := range e.byField {
		total += len(messages)
	}
	return total
}

// Empty reports whether no field has any message.
func (e *FieldErrors) Empty() bool {
	return e.Len() == 0
}

// FullMessages flattens the per-field messages into a single ordered slice:
// field declaration order first, message order within each field second. The
// result length always equals Len.
func (e *FieldErrors) FullMessages() []string {
	if e.Empty() {
		return nil
	}
	out := make([]string, 0, e.Len())
	for _, field := range e.order {
		out = append(out, e.byField[field]...)
	}
	return out
}

func (e *FieldErrors) clone() FieldErrors {
	if e == nil || len(e.byField) == 0 {
		return FieldErrors{}
	}
	clone := FieldErrors{
		order:   make([]string, len(e.order)),
		byField: make(map[string][]string, len(e.byField)),
	}
	copy(clone.order, e.order)
	for field, messages := range e.byField {
		copied := make([]string, len(messages))
		copy(copied, messages)
		clone.byField[field] = copied
	}
	return clone
}

func containsMessage(messages []string, candidate string) bool {
	for _, message := range messages {
		if message == candidate {
			return true
		}
	}
	return false
}
