package neofuzzy

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInputs reports a nil or empty input vector.
	ErrMissingInputs = errors.New("inputs are required")
	// ErrMissingLearningFunction reports a nil learning function.
	ErrMissingLearningFunction = errors.New("learning function is required")
	// ErrMissingMembership reports a rule without a membership function.
	ErrMissingMembership = errors.New("membership function is required")
	// ErrMissingRule reports a nil rule passed to a synapse.
	ErrMissingRule = errors.New("rule is required")
	// ErrMissingSynapse reports a nil synapse passed to a neuron.
	ErrMissingSynapse = errors.New("synapse is required")
	// ErrMissingName reports an empty synapse or input name.
	ErrMissingName = errors.New("synapse name is required")
	// ErrNoSynapses reports a neuron built without synapses.
	ErrNoSynapses = errors.New("at least one synapse is required")
)

// DimensionError reports an input vector whose size does not match the
// neuron's synapse count.
type DimensionError struct {
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("input dimension mismatch: got %d inputs, want %d", e.Got, e.Want)
}

// UnknownSynapseError reports an input name with no matching synapse.
type UnknownSynapseError struct {
	Name string
}

func (e *UnknownSynapseError) Error() string {
	return fmt.Sprintf("no synapse named %q", e.Name)
}

// DuplicateNameError reports a variable name registered twice on a neuron
// configuration.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("synapse named %q is already registered", e.Name)
}
