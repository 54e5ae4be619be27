package prompt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/prompt"
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/validate"
)

// scriptDriver replays canned answers and records the prompts it saw.
type scriptDriver struct {
	inputs    []string
	passwords []string
	confirms  []bool
	selects   []int
	infos     []string

	inputMessages []string
}

func (d *scriptDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.inputMessages = append(d.inputMessages, cfg.Message)
	if len(d.inputs) == 0 {
		return "", errors.New("script exhausted: input")
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out, nil
}

func (d *scriptDriver) Password(_ context.Context, cfg prompt.InputConfig) (string, error) {
	if len(d.passwords) == 0 {
		return "", errors.New("script exhausted: password")
	}
	out := d.passwords[0]
	d.passwords = d.passwords[1:]
	return out, nil
}

func (d *scriptDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, errors.New("script exhausted: confirm")
	}
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *scriptDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return 0, errors.New("script exhausted: select")
	}
	out := d.selects[0]
	d.selects = d.selects[1:]
	return out, nil
}

func (d *scriptDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func signupSchema() schema.Schema {
	return schema.Schema{
		Name: "signup",
		Fields: []schema.Field{
			{Name: "name", Label: "Name", Type: schema.FieldTypeText, Required: true},
			{Name: "password", Label: "Password", Type: schema.FieldTypePassword},
			{
				Name:  "plan",
				Label: "Plan",
				Type:  schema.FieldTypeSelect,
				Options: []schema.Option{
					{Value: "free", Label: "Free"},
					{Value: "pro", Label: "Pro"},
				},
			},
			{Name: "newsletter", Label: "Newsletter", Type: schema.FieldTypeCheckbox},
		},
	}
}

func TestSessionRunValidFirstAttempt(t *testing.T) {
	driver := &scriptDriver{
		inputs:    []string{"Jane"},
		passwords: []string{"hunter2"},
		selects:   []int{1},
		confirms:  []bool{true},
	}

	session, err := prompt.New(signupSchema(), driver)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	snap, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !snap.Valid() {
		t.Fatalf("Run() snapshot invalid: %v", snap.FullMessages())
	}

	want := map[string]string{
		"name":       "Jane",
		"password":   "hunter2",
		"plan":       "pro",
		"newsletter": "1",
	}
	for name, value := range want {
		if got := snap.Value(name); got != value {
			t.Errorf("Value(%q) = %q, want %q", name, got, value)
		}
	}
}

func TestSessionRunRepromptsInvalidFieldsOnly(t *testing.T) {
	driver := &scriptDriver{
		inputs:    []string{"", "Jane"},
		passwords: []string{"hunter2"},
		selects:   []int{0},
		confirms:  []bool{false},
	}

	session, err := prompt.New(signupSchema(), driver)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	snap, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !snap.Valid() {
		t.Fatalf("Run() snapshot invalid: %v", snap.FullMessages())
	}

	if diff := cmp.Diff([]string{"Name", "Name"}, driver.inputMessages); diff != "" {
		t.Errorf("input prompts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Name can't be blank"}, driver.infos); diff != "" {
		t.Errorf("info messages mismatch (-want +got):\n%s", diff)
	}
	if got := snap.Value("name"); got != "Jane" {
		t.Errorf("Value(name) = %q, want %q", got, "Jane")
	}
	if got := snap.Value("plan"); got != "free" {
		t.Errorf("Value(plan) = %q, want %q", got, "free")
	}
}

func TestSessionRunTooManyAttempts(t *testing.T) {
	driver := &scriptDriver{
		inputs:    []string{"", ""},
		passwords: []string{""},
		selects:   []int{0},
		confirms:  []bool{false},
	}

	session, err := prompt.New(signupSchema(), driver, prompt.WithMaxAttempts(2))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	snap, err := session.Run(context.Background())
	if !errors.Is(err, prompt.ErrTooManyAttempts) {
		t.Fatalf("Run() error = %v, want ErrTooManyAttempts", err)
	}
	if snap == nil || snap.Valid() {
		t.Fatalf("Run() should return the last invalid snapshot")
	}
	if !snap.Invalid("name") {
		t.Errorf("name should still carry messages: %v", snap.FullMessages())
	}
}

func TestSessionRunAppliesRules(t *testing.T) {
	driver := &scriptDriver{
		inputs:    []string{"Jo", "Jane"},
		passwords: []string{"hunter2"},
		selects:   []int{0},
		confirms:  []bool{false},
	}

	rules := validate.RuleSet{
		"name": {validate.MinLength(3)},
	}
	session, err := prompt.New(signupSchema(), driver, prompt.WithRules(rules))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	snap, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !snap.Valid() {
		t.Fatalf("Run() snapshot invalid: %v", snap.FullMessages())
	}
	if len(driver.infos) != 1 {
		t.Fatalf("got %d info messages, want 1: %v", len(driver.infos), driver.infos)
	}
}

func TestSessionRejectsBadSchema(t *testing.T) {
	bad := schema.Schema{Fields: []schema.Field{{Name: ""}}}
	if _, err := prompt.New(bad, &scriptDriver{}); err == nil {
		t.Fatal("New() accepted a schema with an unnamed field")
	}
}

func TestSessionRequiresDriver(t *testing.T) {
	if _, err := prompt.New(signupSchema(), nil); err == nil {
		t.Fatal("New() accepted a nil driver")
	}
}
