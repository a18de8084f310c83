package neofuzzy

import (
	"fmt"
	"strings"
)

// Input is one named observation handed to the neuron. Inputs are plain
// values; the neuron copies what it needs and retains no references.
type Input struct {
	Name  string
	Value float64
}

// Equal compares the name case-insensitively and the value exactly.
func (in Input) Equal(other Input) bool {
	return strings.EqualFold(in.Name, other.Name) && in.Value == other.Value
}

func (in Input) String() string {
	return fmt.Sprintf("(%s: %g)", in.Name, in.Value)
}

// NewInputs validates an input vector: at least one entry, every name
// non-empty and unique case-insensitively. The returned slice is a copy.
func NewInputs(inputs ...Input) ([]Input, error) {
	if len(inputs) == 0 {
		return nil, ErrMissingInputs
	}
	seen := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		if in.Name == "" {
			return nil, ErrMissingName
		}
		key := strings.ToLower(in.Name)
		if _, ok := seen[key]; ok {
			return nil, &DuplicateNameError{Name: in.Name}
		}
		seen[key] = struct{}{}
	}
	out := make([]Input, len(inputs))
	copy(out, inputs)
	return out, nil
}
