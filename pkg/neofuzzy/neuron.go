// Package neofuzzy implements a single-layer neo-fuzzy neuron: named inputs
// feed per-variable synapses of fuzzy implication rules, rule contributions
// sum to the scalar output, and stepwise gradient descent adjusts the
// singleton consequent weights online.
//
// A Neuron is not safe for concurrent use: weight mutation is not atomic
// across rules within one learning call, so callers running Learn
// concurrently with anything else need external mutual exclusion.
package neofuzzy

import (
	"sort"
	"strings"

	"neofuzzy/pkg/membership"
)

// Neuron maps a vector of named inputs to a scalar output through one
// synapse per input variable. The synapse set is fixed at construction;
// only rule weights change afterwards, through the Learn methods.
type Neuron struct {
	synapses map[string]*Synapse
}

// NewNeuron builds a neuron over one or more synapses. Names are matched
// case-insensitively; when two synapses carry the same name the last one
// wins.
func NewNeuron(synapses ...*Synapse) (*Neuron, error) {
	if len(synapses) == 0 {
		return nil, ErrNoSynapses
	}
	n := &Neuron{synapses: make(map[string]*Synapse, len(synapses))}
	for _, s := range synapses {
		if s == nil {
			return nil, ErrMissingSynapse
		}
		n.synapses[strings.ToLower(s.name)] = s
	}
	return n, nil
}

// Calculate returns the neuron output for inputs: the sum of each input's
// synapse contribution, accumulated in input order.
func (n *Neuron) Calculate(inputs []Input) (float64, error) {
	synapses, err := n.resolve(inputs)
	if err != nil {
		return 0, err
	}
	output := 0.0
	for i, s := range synapses {
		value, err := s.Apply(inputs[i].Value)
		if err != nil {
			return 0, err
		}
		output += value
	}
	return output, nil
}

// Learn performs one stepwise update toward target: the current output and
// the optimal learning rate are derived from inputs, then the weights move
// one gradient-descent step.
func (n *Neuron) Learn(inputs []Input, target float64) error {
	output, err := n.Calculate(inputs)
	if err != nil {
		return err
	}
	return n.LearnWithOutput(inputs, output, target)
}

// LearnWithOutput performs one stepwise update toward target using a
// caller-supplied output value and the optimal learning rate for inputs.
func (n *Neuron) LearnWithOutput(inputs []Input, output, target float64) error {
	rate, err := n.OptimalLearningRate(inputs)
	if err != nil {
		return err
	}
	return n.LearnWithRate(inputs, output, target, rate)
}

// LearnWithRate is the core update: one gradient-descent step on every
// active rule's consequent weight, minimizing the squared error between
// output and target. Inputs are fully validated and resolved before any
// weight moves. The delta expression keeps its exact operand order; exact
// reproducibility of learned weights depends on it.
func (n *Neuron) LearnWithRate(inputs []Input, output, target, rate float64) error {
	synapses, err := n.resolve(inputs)
	if err != nil {
		return err
	}
	for i, s := range synapses {
		x := inputs[i].Value
		learn := func(fn membership.Function) float64 {
			return -rate * (output - target) * fn.Apply(x)
		}
		if err := s.LearnWith(learn); err != nil {
			return err
		}
	}
	return nil
}

// OptimalLearningRate returns 1 / Σ degree² over both fuzzy-segment slots
// of every input, summed in input order. The division is not guarded: an
// input vector activating no rules gives a zero sum and an infinite rate.
func (n *Neuron) OptimalLearningRate(inputs []Input) (float64, error) {
	synapses, err := n.resolve(inputs)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for i, s := range synapses {
		segment, err := s.FuzzySegment(inputs[i].Value)
		if err != nil {
			return 0, err
		}
		for _, degree := range segment {
			sum += degree * degree
		}
	}
	return 1 / sum, nil
}

// SynapseFor resolves the synapse for one input by case-insensitive name.
func (n *Neuron) SynapseFor(input Input) (*Synapse, error) {
	s, ok := n.synapses[strings.ToLower(input.Name)]
	if !ok {
		return nil, &UnknownSynapseError{Name: input.Name}
	}
	return s, nil
}

// Equal compares neurons by synapse name set and per-name synapse equality.
func (n *Neuron) Equal(other *Neuron) bool {
	if n == nil || other == nil {
		return n == other
	}
	if len(n.synapses) != len(other.synapses) {
		return false
	}
	for name, s := range n.synapses {
		o, ok := other.synapses[name]
		if !ok || !s.Equal(o) {
			return false
		}
	}
	return true
}

// Fingerprint returns a short stable digest over the synapse names and
// their rule sets, consistent with Equal.
func (n *Neuron) Fingerprint() string {
	parts := make([]string, 0, len(n.synapses))
	for name, s := range n.synapses {
		parts = append(parts, name+"="+s.Fingerprint())
	}
	sort.Strings(parts)
	return fingerprint("neuron", parts...)
}

func (n *Neuron) String() string {
	var b strings.Builder
	b.WriteString("Neo-Fuzzy-Neuron:\n")
	for _, s := range n.synapses {
		b.WriteString(s.String())
	}
	return b.String()
}

// resolve validates the whole input vector up front: presence, dimension,
// then every name. No caller mutates any weight before resolve succeeds.
func (n *Neuron) resolve(inputs []Input) ([]*Synapse, error) {
	if inputs == nil {
		return nil, ErrMissingInputs
	}
	if err := n.checkDimension(inputs); err != nil {
		return nil, err
	}
	synapses := make([]*Synapse, len(inputs))
	for i, in := range inputs {
		s, err := n.SynapseFor(in)
		if err != nil {
			return nil, err
		}
		synapses[i] = s
	}
	return synapses, nil
}

// checkDimension compares counts only; wrong names with the right count
// fail later at name resolution.
func (n *Neuron) checkDimension(inputs []Input) error {
	if len(inputs) != len(n.synapses) {
		return &DimensionError{Got: len(inputs), Want: len(n.synapses)}
	}
	return nil
}
