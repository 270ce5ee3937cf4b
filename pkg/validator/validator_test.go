package validator

import "testing"

func TestCheck_CollectsAllFailures(t *testing.T) {
	v := New()
	v.Check(false, "a", "first")
	v.Check(true, "b", "never added")
	v.Check(false, "c", "third")

	if v.Valid() {
		t.Fatal("validator with failures must not be valid")
	}
	if len(v.Errors) != 2 {
		t.Fatalf("want 2 errors, got %d: %v", len(v.Errors), v.Errors)
	}
	if _, ok := v.Errors["b"]; ok {
		t.Fatal("passing check must not add an error")
	}
}

func TestAddError_KeepsFirstMessage(t *testing.T) {
	v := New()
	v.AddError("field", "first message")
	v.AddError("field", "second message")

	if got := v.Errors["field"]; got != "first message" {
		t.Fatalf("want first message kept, got %q", got)
	}
}

func TestMatches_Email(t *testing.T) {
	if !Matches("admin@vahanex.com", EmailRX) {
		t.Fatal("valid email rejected")
	}
	if Matches("not-an-email", EmailRX) {
		t.Fatal("invalid email accepted")
	}
}

func TestPermittedValue(t *testing.T) {
	if !PermittedValue("car", "car", "bike", "scooter") {
		t.Fatal("permitted value rejected")
	}
	if PermittedValue("truck", "car", "bike", "scooter") {
		t.Fatal("non-permitted value accepted")
	}
}

func TestUnique(t *testing.T) {
	if !Unique([]string{"i1", "i2", "i3"}) {
		t.Fatal("unique slice reported as non-unique")
	}
	if Unique([]string{"i1", "i1"}) {
		t.Fatal("duplicate slice reported as unique")
	}
}
