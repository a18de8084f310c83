package neofuzzy

import (
	"errors"
	"testing"
)

func TestInputEquality(t *testing.T) {
	pets := Input{Name: "Pets", Value: 123}

	if !pets.Equal(Input{Name: "Pets", Value: 123}) {
		t.Fatalf("identical inputs compare unequal")
	}
	if !pets.Equal(Input{Name: "PETS", Value: 123}) {
		t.Fatalf("name comparison should ignore case")
	}
	if pets.Equal(Input{Name: "Birds", Value: 123}) {
		t.Fatalf("inputs with different names compare equal")
	}
	if pets.Equal(Input{Name: "Pets", Value: 345}) {
		t.Fatalf("inputs with different values compare equal")
	}
}

func TestInputString(t *testing.T) {
	in := Input{Name: "Pets", Value: 123}
	if got := in.String(); got != "(Pets: 123)" {
		t.Fatalf("String() = %q, want %q", got, "(Pets: 123)")
	}
}

func TestNewInputs(t *testing.T) {
	inputs, err := NewInputs(
		Input{Name: "Sand", Value: 4.8},
		Input{Name: "Water", Value: 343.67},
	)
	if err != nil {
		t.Fatalf("NewInputs: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("NewInputs returned %d entries, want 2", len(inputs))
	}

	if _, err := NewInputs(); !errors.Is(err, ErrMissingInputs) {
		t.Fatalf("expected ErrMissingInputs, got %v", err)
	}
	if _, err := NewInputs(Input{Value: 4.8}); !errors.Is(err, ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}

	_, err = NewInputs(Input{Name: "Sand", Value: 1}, Input{Name: "SAND", Value: 2})
	var dup *DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateNameError, got %v", err)
	}
	if dup.Name != "SAND" {
		t.Fatalf("DuplicateNameError carries %q, want the second spelling", dup.Name)
	}
}

func TestNewInputsCopies(t *testing.T) {
	source := []Input{{Name: "Sand", Value: 4.8}}
	inputs, err := NewInputs(source...)
	if err != nil {
		t.Fatalf("NewInputs: %v", err)
	}

	source[0].Value = -1
	if inputs[0].Value != 4.8 {
		t.Fatalf("NewInputs shares backing storage with the caller")
	}
}
