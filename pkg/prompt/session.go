package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/state"
	"github.com/goliatone/go-formstate/pkg/validate"
)

// ErrTooManyAttempts is returned when the attempt budget runs out before the
// submission validates. The snapshot returned alongside it carries the last
// attempt's values and messages.
var ErrTooManyAttempts = errors.New("prompt: too many invalid attempts")

const defaultMaxAttempts = 3

// Option configures a session.
type Option func(*Session)

// WithRules attaches field constraint rules checked on every attempt.
func WithRules(rules validate.RuleSet) Option {
	return func(s *Session) {
		s.rules = rules
	}
}

// WithMaxAttempts bounds how many times the session re-prompts before giving
// up. Values below one are ignored.
func WithMaxAttempts(attempts int) Option {
	return func(s *Session) {
		if attempts >= 1 {
			s.maxAttempts = attempts
		}
	}
}

// Session walks a form schema over a terminal driver, validates each
// submission attempt, and re-prompts the fields that failed until the
// submission is clean or the attempt budget is spent.
type Session struct {
	schema      schema.Schema
	driver      Driver
	rules       validate.RuleSet
	maxAttempts int
}

// New builds a session over the given schema and driver.
func New(s schema.Schema, driver Driver, options ...Option) (*Session, error) {
	if driver == nil {
		return nil, fmt.Errorf("prompt: driver is required")
	}
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("prompt: invalid schema: %w", err)
	}

	session := &Session{
		schema:      s,
		driver:      driver,
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(session)
	}
	return session, nil
}

// Run prompts for every field, validates, and repeats for invalid fields.
// It returns the first valid snapshot, or the last invalid one together with
// ErrTooManyAttempts. Prompt and driver failures abort the run.
func (s *Session) Run(ctx context.Context) (*state.Snapshot, error) {
	values := make(map[string]any, len(s.schema.Fields))
	var snapshot *state.Snapshot

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		for _, field := range s.schema.Fields {
			if attempt > 0 && !snapshot.Invalid(field.Name) {
				continue
			}
			value, err := s.ask(ctx, field, snapshot)
			if err != nil {
				return nil, err
			}
			values[field.Name] = value
		}

		var err error
		snapshot, err = validate.Submission(values, s.schema, s.rules)
		if err != nil {
			return nil, fmt.Errorf("prompt: validate submission: %w", err)
		}
		if snapshot.Valid() {
			return snapshot, nil
		}

		for _, message := range s.messages(snapshot) {
			if err := s.driver.Info(ctx, message); err != nil {
				return nil, err
			}
		}
	}

	return snapshot, ErrTooManyAttempts
}

func (s *Session) ask(ctx context.Context, field schema.Field, previous *state.Snapshot) (string, error) {
	message := field.Label
	if message == "" {
		message = field.Name
	}

	switch {
	case field.NoEcho:
		return s.driver.Password(ctx, InputConfig{
			Message: message,
			Help:    field.Help,
		})
	case field.Type == schema.FieldTypeCheckbox:
		ok, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Help:    field.Help,
			Default: previous.Value(field.Name) == "1",
		})
		if err != nil {
			return "", err
		}
		if ok {
			return "1", nil
		}
		return "", nil
	case field.Type == schema.FieldTypeSelect && len(field.Options) > 0:
		labels := make([]string, 0, len(field.Options))
		defaultIndex := 0
		for i, option := range field.Options {
			label := option.Label
			if label == "" {
				label = option.Value
			}
			labels = append(labels, label)
			if option.Value == previous.Value(field.Name) {
				defaultIndex = i
			}
		}
		index, err := s.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      labels,
			DefaultIndex: defaultIndex,
			Help:         field.Help,
		})
		if err != nil {
			return "", err
		}
		if index < 0 || index >= len(field.Options) {
			return "", fmt.Errorf("prompt: selection out of range for field %q", field.Name)
		}
		return field.Options[index].Value, nil
	default:
		return s.driver.Input(ctx, InputConfig{
			Message: message,
			Default: previous.Value(field.Name),
			Help:    field.Help,
		})
	}
}

// messages prefixes each full message with its field label so the terminal
// summary reads like the HTML one.
func (s *Session) messages(snapshot *state.Snapshot) []string {
	errs := snapshot.Errors()
	out := make([]string, 0, errs.Len())
	for _, name := range errs.Fields() {
		label := name
		if field, ok := s.schema.Field(name); ok && field.Label != "" {
			label = field.Label
		}
		for _, message := range errs.Messages(name) {
			out = append(out, fmt.Sprintf("%s %s", label, message))
		}
	}
	return out
}
