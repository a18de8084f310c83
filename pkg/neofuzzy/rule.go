package neofuzzy

import (
	"fmt"

	"neofuzzy/pkg/membership"
)

// LearningFunction computes a consequent weight delta from a rule's
// antecedent membership function.
type LearningFunction func(membership.Function) float64

// Rule is a fuzzy implication rule: a membership function antecedent paired
// with an adjustable singleton consequent weight. The weight starts at 0 and
// changes only through Adjust.
type Rule struct {
	fn     membership.Function
	weight float64
}

// NewRule builds a rule around fn with a zero consequent weight. A nil fn
// is accepted here and rejected by every operation that needs it.
func NewRule(fn membership.Function) *Rule {
	return &Rule{fn: fn}
}

// Evaluate returns the rule's contribution for input x: the membership
// degree of x multiplied by the consequent weight.
func (r *Rule) Evaluate(x float64) (float64, error) {
	if r.fn == nil {
		return 0, ErrMissingMembership
	}
	return r.fn.Apply(x) * r.weight, nil
}

// Adjust applies one learning increment: weight += learn(antecedent).
func (r *Rule) Adjust(learn LearningFunction) error {
	if learn == nil {
		return ErrMissingLearningFunction
	}
	if r.fn == nil {
		return ErrMissingMembership
	}
	r.weight += learn(r.fn)
	return nil
}

// Weight returns the current consequent weight.
func (r *Rule) Weight() float64 { return r.weight }

// Membership returns the antecedent membership function.
func (r *Rule) Membership() membership.Function { return r.fn }

// Equal compares rules by antecedent only; the learned weight is excluded.
// Rule identity is the fuzzy region it covers, not the value it has learned
// there. Antecedents are compared as values, so membership function
// implementations must be comparable types.
func (r *Rule) Equal(other *Rule) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.fn == other.fn
}

// Fingerprint returns a short stable digest of the antecedent. Equal rules
// share a fingerprint regardless of learned weight.
func (r *Rule) Fingerprint() string {
	return fingerprint("rule", fmt.Sprintf("fn=%T%v", r.fn, r.fn))
}

func (r *Rule) String() string {
	return fmt.Sprintf("Rule: If 'x' is %v then 'y' is %g", r.fn, r.weight)
}
