package neofuzzy

import (
	"fmt"
	"sort"
	"strings"
)

// Synapse models one named input variable as an ordered set of implication
// rules. Rules keep insertion order and are deduplicated by antecedent; the
// rule set is fixed after construction, only rule weights mutate.
type Synapse struct {
	name  string
	rules []*Rule
}

// NewSynapse builds a synapse named name over the given rules. Duplicate
// rules (equal antecedents) collapse to their first occurrence. A synapse
// with no rules is permitted and contributes 0; range-based construction
// via BuildSynapse always yields at least one rule.
func NewSynapse(name string, rules ...*Rule) (*Synapse, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	s := &Synapse{name: name}
	for _, r := range rules {
		if r == nil {
			return nil, ErrMissingRule
		}
		if !s.contains(r) {
			s.rules = append(s.rules, r)
		}
	}
	return s, nil
}

// Name returns the input variable identifier.
func (s *Synapse) Name() string { return s.name }

// Rules returns the owned rules in insertion order. The slice is a copy;
// the rules themselves are shared live references.
func (s *Synapse) Rules() []*Rule {
	out := make([]*Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Apply returns the synapse's contribution for input x: the sum of every
// rule's evaluation, accumulated in rule order.
func (s *Synapse) Apply(x float64) (float64, error) {
	output := 0.0
	for _, r := range s.rules {
		value, err := r.Evaluate(x)
		if err != nil {
			return 0, err
		}
		output += value
	}
	return output, nil
}

// FuzzySegment returns the membership degrees of the rules active at x, in
// rule order, in a two-slot result. Adjoining triangular partitions activate
// at most two rules per input; with overlapping custom rules the third and
// later activations are dropped, not reported. Unfilled slots stay 0.
func (s *Synapse) FuzzySegment(x float64) ([2]float64, error) {
	var segment [2]float64
	slot := 0
	for _, r := range s.rules {
		if r.fn == nil {
			return [2]float64{}, ErrMissingMembership
		}
		degree := r.fn.Apply(x)
		if degree > 0 && slot < len(segment) {
			segment[slot] = degree
			slot++
		}
	}
	return segment, nil
}

// LearnWith adjusts every rule's weight with learn, in rule order. A failure
// on a later rule leaves earlier rules already adjusted.
func (s *Synapse) LearnWith(learn LearningFunction) error {
	if learn == nil {
		return ErrMissingLearningFunction
	}
	for _, r := range s.rules {
		if err := r.Adjust(learn); err != nil {
			return err
		}
	}
	return nil
}

// Equal compares synapses by rule set alone; the name is excluded. Two
// synapses modeling different variables with the same fuzzy partition
// compare equal.
func (s *Synapse) Equal(other *Synapse) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.containsAll(other.rules) && other.containsAll(s.rules)
}

// Fingerprint returns a short stable digest of the rule set, insensitive to
// rule order and to the synapse name, consistent with Equal.
func (s *Synapse) Fingerprint() string {
	parts := make([]string, 0, len(s.rules))
	for _, r := range s.rules {
		parts = append(parts, r.Fingerprint())
	}
	sort.Strings(parts)
	return fingerprint("synapse", parts...)
}

func (s *Synapse) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Synapse: %s\n", s.name)
	for _, r := range s.rules {
		fmt.Fprintf(&b, "\t%s\n", r)
	}
	return b.String()
}

func (s *Synapse) contains(r *Rule) bool {
	for _, own := range s.rules {
		if own.Equal(r) {
			return true
		}
	}
	return false
}

func (s *Synapse) containsAll(rules []*Rule) bool {
	for _, r := range rules {
		if !s.contains(r) {
			return false
		}
	}
	return true
}
