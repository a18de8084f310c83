package neofuzzy

import (
	"fmt"
	"math"
	"strings"

	"neofuzzy/pkg/membership"
)

// DefaultRuleCount is the rule count a SynapseConfig falls back to when
// Rules is zero.
const DefaultRuleCount = 10

// SynapseConfig describes an evenly partitioned synapse over one input
// variable's range.
type SynapseConfig struct {
	Name  string
	Lower float64
	Upper float64
	// Rules is the number of triangular rules across [Lower, Upper].
	// Zero means the default of 10; negative is invalid.
	Rules int
}

// BuildSynapse builds a synapse whose rule peaks are evenly spaced across
// [Lower, Upper], each foot clamped to the neighboring peak or the range
// bound. Adjacent rules overlap by one step and their degrees sum to 1
// everywhere inside the range. A single-rule config yields one shoulder
// covering the whole range.
func BuildSynapse(cfg SynapseConfig) (*Synapse, error) {
	if cfg.Name == "" {
		return nil, ErrMissingName
	}
	count := cfg.Rules
	if count == 0 {
		count = DefaultRuleCount
	}
	if count < 1 {
		return nil, fmt.Errorf("synapse %q: rule count must be at least 1, got %d", cfg.Name, cfg.Rules)
	}
	if cfg.Lower >= cfg.Upper {
		return nil, fmt.Errorf("synapse %q: input range [%g, %g] is empty or inverted", cfg.Name, cfg.Lower, cfg.Upper)
	}

	if count == 1 {
		tri, err := membership.NewTriangle(cfg.Lower, cfg.Lower, cfg.Upper)
		if err != nil {
			return nil, err
		}
		return NewSynapse(cfg.Name, NewRule(tri))
	}

	// Peaks are clamped into the range: the last peak's step arithmetic can
	// round past Upper for ranges that are not exactly representable.
	step := (cfg.Upper - cfg.Lower) / float64(count-1)
	rules := make([]*Rule, 0, count)
	for i := 0; i < count; i++ {
		b := math.Min(cfg.Upper, cfg.Lower+step*float64(i))
		a := math.Max(cfg.Lower, b-step)
		c := math.Min(cfg.Upper, b+step)
		tri, err := membership.NewTriangle(a, b, c)
		if err != nil {
			return nil, err
		}
		rules = append(rules, NewRule(tri))
	}
	return NewSynapse(cfg.Name, rules...)
}

// NeuronConfig assembles a neuron from pre-built synapses and range-based
// variable definitions.
type NeuronConfig struct {
	// Synapses register first; among themselves a repeated name follows
	// last-write-wins, as NewNeuron does.
	Synapses []*Synapse
	// Variables build through BuildSynapse and register second; a name
	// already registered is a DuplicateNameError.
	Variables []SynapseConfig
}

// BuildNeuron builds a neuron from cfg. At least one synapse or variable
// is required.
func BuildNeuron(cfg NeuronConfig) (*Neuron, error) {
	if len(cfg.Synapses) == 0 && len(cfg.Variables) == 0 {
		return nil, ErrNoSynapses
	}
	registered := make(map[string]*Synapse, len(cfg.Synapses)+len(cfg.Variables))
	for _, s := range cfg.Synapses {
		if s == nil {
			return nil, ErrMissingSynapse
		}
		registered[strings.ToLower(s.name)] = s
	}
	for _, v := range cfg.Variables {
		key := strings.ToLower(v.Name)
		if _, ok := registered[key]; ok {
			return nil, &DuplicateNameError{Name: v.Name}
		}
		s, err := BuildSynapse(v)
		if err != nil {
			return nil, err
		}
		registered[key] = s
	}
	synapses := make([]*Synapse, 0, len(registered))
	for _, s := range registered {
		synapses = append(synapses, s)
	}
	return NewNeuron(synapses...)
}
