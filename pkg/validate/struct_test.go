package validate_test

import (
	"testing"

	"github.com/goliatone/go-formstate/pkg/validate"
)

type signupForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=8"`
	Age      int    `json:"age" validate:"omitempty,gte=18"`
	Internal string `json:"-"`
}

func TestStructValidator_InvalidStruct(t *testing.T) {
	v, err := validate.NewStructValidator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	snap, err := v.Snapshot(signupForm{
		Name:     "Jane",
		Email:    "not-an-email",
		Password: "short",
		Age:      12,
	})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	if snap.Valid() {
		t.Fatal("expected violations")
	}
	for _, field := range []string{"email", "password", "age"} {
		if !snap.Invalid(field) {
			t.Errorf("expected %q to carry a message", field)
		}
		for _, message := range snap.FieldMessages(field) {
			if message == "" {
				t.Errorf("field %q has an empty message", field)
			}
		}
	}
	if snap.Invalid("name") {
		t.Fatal("name should be valid")
	}

	// Values are captured for re-display, keyed by json tag.
	if got := snap.Value("email"); got != "not-an-email" {
		t.Fatalf("expected submitted email to be captured, got %q", got)
	}
	if got := snap.Value("age"); got != "12" {
		t.Fatalf("expected numeric value stringified, got %q", got)
	}
	if _, ok := snap.Lookup("Internal"); ok {
		t.Fatal("fields without json names must not be captured")
	}
}

func TestStructValidator_ValidStruct(t *testing.T) {
	v, err := validate.NewStructValidator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	snap, err := v.Snapshot(&signupForm{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "long-enough",
		Age:      30,
	})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if !snap.Valid() {
		t.Fatalf("expected valid snapshot, got %v", snap.FullMessages())
	}
	if got := snap.Value("name"); got != "Jane" {
		t.Fatalf("expected value capture on valid input, got %q", got)
	}
}

func TestStructValidator_RejectsNonStructs(t *testing.T) {
	v, err := validate.NewStructValidator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	if _, err := v.Snapshot("not a struct"); err == nil {
		t.Fatal("expected error for non-struct subject")
	}
	var nilForm *signupForm
	if _, err := v.Snapshot(nilForm); err == nil {
		t.Fatal("expected error for nil subject")
	}
}
