package state_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/state"
)

func TestFieldErrors_AddNormalisesMessages(t *testing.T) {
	var errs state.FieldErrors
	errs.Add("name", " does not allow numbers ", "", "does not allow numbers")
	errs.Add("email", "is invalid")
	errs.Add("  ", "ignored entirely")
	errs.Add("name", "is too short")

	if got := errs.Len(); got != 3 {
		t.Fatalf("expected 3 messages, got %d", got)
	}

	want := []string{"does not allow numbers", "is too short"}
	if diff := cmp.Diff(want, errs.Messages("name")); diff != "" {
		t.Fatalf("name messages mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldErrors_FieldsKeepDeclarationOrder(t *testing.T) {
	var errs state.FieldErrors
	errs.Add("zip", "is required")
	errs.Add("address", "is required")
	errs.Add("zip", "must be five digits")

	want := []string{"zip", "address"}
	if diff := cmp.Diff(want, errs.Fields()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldErrors_FullMessagesFlattensInOrder(t *testing.T) {
	var errs state.FieldErrors
	errs.Add("name", "does not allow numbers", "is too short")
	errs.Add("email", "is invalid")

	want := []string{"does not allow numbers", "is too short", "is invalid"}
	if diff := cmp.Diff(want, errs.FullMessages()); diff != "" {
		t.Fatalf("full messages mismatch (-want +got):\n%s", diff)
	}
	if got, want := len(errs.FullMessages()), errs.Len(); got != want {
		t.Fatalf("full messages length %d does not match Len %d", got, want)
	}
}

func TestFieldErrors_AbsentFieldDefaults(t *testing.T) {
	var errs state.FieldErrors

	if errs.Has("missing") {
		t.Fatal("expected absent field to report no errors")
	}
	if got := errs.Messages("missing"); got != nil {
		t.Fatalf("expected nil messages for absent field, got %v", got)
	}
	if !errs.Empty() {
		t.Fatal("expected zero-value FieldErrors to be empty")
	}
	if got := errs.FullMessages(); got != nil {
		t.Fatalf("expected nil full messages, got %v", got)
	}
}

func TestFieldErrors_MessagesReturnsCopy(t *testing.T) {
	var errs state.FieldErrors
	errs.Add("name", "is required")

	got := errs.Messages("name")
	got[0] = "mutated"

	if diff := cmp.Diff([]string{"is required"}, errs.Messages("name")); diff != "" {
		t.Fatalf("internal state mutated through returned slice (-want +got):\n%s", diff)
	}
}
