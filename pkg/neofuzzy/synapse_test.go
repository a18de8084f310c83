package neofuzzy

import (
	"errors"
	"testing"
)

// threeRuleSynapse covers [1, 5] with the adjoining triangles used across
// the synapse tests.
func threeRuleSynapse(t *testing.T, name string) *Synapse {
	t.Helper()

	s, err := NewSynapse(name,
		NewRule(mustTriangle(t, 1, 2, 3)),
		NewRule(mustTriangle(t, 2, 3, 4)),
		NewRule(mustTriangle(t, 3, 4, 5)),
	)
	if err != nil {
		t.Fatalf("NewSynapse: %v", err)
	}
	return s
}

func TestNewSynapseValidation(t *testing.T) {
	rule := NewRule(mustTriangle(t, 1, 2, 3))

	if _, err := NewSynapse("", rule); !errors.Is(err, ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}
	if _, err := NewSynapse("Dogs", rule, nil); !errors.Is(err, ErrMissingRule) {
		t.Fatalf("expected ErrMissingRule, got %v", err)
	}
	if _, err := NewSynapse("Dogs"); err != nil {
		t.Fatalf("rule-less synapse rejected: %v", err)
	}
}

func TestNewSynapseDeduplicatesRules(t *testing.T) {
	first := NewRule(mustTriangle(t, 1, 2, 3))
	duplicate := NewRule(mustTriangle(t, 1, 2, 3))
	second := NewRule(mustTriangle(t, 2, 3, 4))

	s, err := NewSynapse("Dogs", first, duplicate, second)
	if err != nil {
		t.Fatalf("NewSynapse: %v", err)
	}
	rules := s.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules after deduplication, got %d", len(rules))
	}
	if rules[0] != first || rules[1] != second {
		t.Fatalf("deduplication broke insertion order")
	}
}

func TestSynapseRulesReturnsCopy(t *testing.T) {
	s := threeRuleSynapse(t, "Dogs")
	rules := s.Rules()
	rules[0] = nil
	if again := s.Rules(); again[0] == nil {
		t.Fatalf("mutating the returned slice changed synapse state")
	}
}

func TestSynapseEvaluation(t *testing.T) {
	s := threeRuleSynapse(t, "Dogs")
	for _, x := range []float64{5, 23.1, -134723.456} {
		value, err := s.Apply(x)
		if err != nil {
			t.Fatalf("Apply(%g): %v", x, err)
		}
		if value != 0 {
			t.Fatalf("fresh synapse Apply(%g) = %g, want 0", x, value)
		}
	}
}

func TestSynapseApplyMissingMembership(t *testing.T) {
	s, err := NewSynapse("Dogs", NewRule(mustTriangle(t, 1, 2, 3)), NewRule(nil))
	if err != nil {
		t.Fatalf("NewSynapse: %v", err)
	}
	if _, err := s.Apply(2); !errors.Is(err, ErrMissingMembership) {
		t.Fatalf("expected ErrMissingMembership, got %v", err)
	}
}

func TestSynapseFuzzySegment(t *testing.T) {
	s := threeRuleSynapse(t, "Cats")

	cases := []struct {
		x    float64
		want [2]float64
	}{
		{2, [2]float64{1, 0}},
		{2.5, [2]float64{0.5, 0.5}},
		{2.75, [2]float64{0.25, 0.75}},
		{3, [2]float64{1, 0}},
		{6.4, [2]float64{0, 0}},
	}
	for _, tc := range cases {
		segment, err := s.FuzzySegment(tc.x)
		if err != nil {
			t.Fatalf("FuzzySegment(%g): %v", tc.x, err)
		}
		if segment != tc.want {
			t.Fatalf("FuzzySegment(%g) = %v, want %v", tc.x, segment, tc.want)
		}
	}
}

func TestSynapseFuzzySegmentDropsThirdActivation(t *testing.T) {
	// Non-adjoining rules can activate more than two at once; the extra
	// activations are dropped, not reported.
	s, err := NewSynapse("Cats",
		NewRule(mustTriangle(t, 0, 10, 20)),
		NewRule(mustTriangle(t, 5, 10, 15)),
		NewRule(mustTriangle(t, 8, 10, 12)),
	)
	if err != nil {
		t.Fatalf("NewSynapse: %v", err)
	}

	segment, err := s.FuzzySegment(10)
	if err != nil {
		t.Fatalf("FuzzySegment: %v", err)
	}
	if segment != [2]float64{1, 1} {
		t.Fatalf("FuzzySegment(10) = %v, want [1 1]", segment)
	}

	segment, err = s.FuzzySegment(9)
	if err != nil {
		t.Fatalf("FuzzySegment: %v", err)
	}
	if segment != [2]float64{0.9, 0.8} {
		t.Fatalf("FuzzySegment(9) = %v, want [0.9 0.8]", segment)
	}
}

func TestSynapseFuzzySegmentMissingMembership(t *testing.T) {
	s, err := NewSynapse("Cats", NewRule(mustTriangle(t, 1, 2, 3)), NewRule(nil))
	if err != nil {
		t.Fatalf("NewSynapse: %v", err)
	}
	if _, err := s.FuzzySegment(7); !errors.Is(err, ErrMissingMembership) {
		t.Fatalf("expected ErrMissingMembership, got %v", err)
	}
}

func TestSynapseLearning(t *testing.T) {
	inputs := []float64{2, 3, 4.5, -1, 6.2}
	targets := []float64{30, 37, 55, 0, 3}
	rate := 1.5

	s := threeRuleSynapse(t, "Ducks")
	for i := range inputs {
		output, err := s.Apply(inputs[i])
		if err != nil {
			t.Fatalf("Apply(%g): %v", inputs[i], err)
		}
		if err := s.LearnWith(learnToward(inputs[i], output, targets[i], rate)); err != nil {
			t.Fatalf("LearnWith: %v", err)
		}
	}

	want := []float64{45, 55.5, 20.625, 0, 0}
	for i := range inputs {
		value, err := s.Apply(inputs[i])
		if err != nil {
			t.Fatalf("Apply(%g): %v", inputs[i], err)
		}
		if value != want[i] {
			t.Fatalf("Apply(%g) after learning = %g, want %g", inputs[i], value, want[i])
		}
	}
}

func TestSynapseLearnWithMissingLearningFunction(t *testing.T) {
	s := threeRuleSynapse(t, "Dogs")
	if err := s.LearnWith(nil); !errors.Is(err, ErrMissingLearningFunction) {
		t.Fatalf("expected ErrMissingLearningFunction, got %v", err)
	}
}

func TestSynapseLearnWithPartialAdjustment(t *testing.T) {
	// Known edge case: a missing membership function on a later rule
	// surfaces after earlier rules have already adjusted, so the failed
	// call leaves a partially updated synapse behind.
	healthy := NewRule(mustTriangle(t, 1, 2, 3))
	broken := NewRule(nil)
	s, err := NewSynapse("Dogs", healthy, broken)
	if err != nil {
		t.Fatalf("NewSynapse: %v", err)
	}

	err = s.LearnWith(learnToward(2, 0, 10, 1))
	if !errors.Is(err, ErrMissingMembership) {
		t.Fatalf("expected ErrMissingMembership, got %v", err)
	}
	if healthy.Weight() == 0 {
		t.Fatalf("first rule should have adjusted before the failure")
	}
	if broken.Weight() != 0 {
		t.Fatalf("broken rule weight moved to %g", broken.Weight())
	}
}

func TestSynapseEqualityIgnoresName(t *testing.T) {
	cats := threeRuleSynapse(t, "Cats")
	dogs := threeRuleSynapse(t, "Dogs")
	if !cats.Equal(dogs) {
		t.Fatalf("synapses with equal rule sets compare unequal")
	}

	other, err := NewSynapse("Cats", NewRule(mustTriangle(t, 0, 5, 10)))
	if err != nil {
		t.Fatalf("NewSynapse: %v", err)
	}
	if cats.Equal(other) {
		t.Fatalf("synapses with distinct rule sets compare equal")
	}
}

func TestSynapseEqualityRejectsSubset(t *testing.T) {
	shared := mustTriangle(t, 1, 2, 3)
	small, err := NewSynapse("Cats", NewRule(shared))
	if err != nil {
		t.Fatalf("NewSynapse: %v", err)
	}
	large, err := NewSynapse("Cats", NewRule(shared), NewRule(mustTriangle(t, 2, 3, 4)))
	if err != nil {
		t.Fatalf("NewSynapse: %v", err)
	}

	if small.Equal(large) || large.Equal(small) {
		t.Fatalf("subset rule sets must not compare equal")
	}
}

func TestSynapseFingerprint(t *testing.T) {
	cats, err := NewSynapse("Cats",
		NewRule(mustTriangle(t, 1, 2, 3)),
		NewRule(mustTriangle(t, 2, 3, 4)),
	)
	if err != nil {
		t.Fatalf("NewSynapse: %v", err)
	}
	dogs, err := NewSynapse("Dogs",
		NewRule(mustTriangle(t, 2, 3, 4)),
		NewRule(mustTriangle(t, 1, 2, 3)),
	)
	if err != nil {
		t.Fatalf("NewSynapse: %v", err)
	}

	if cats.Fingerprint() != dogs.Fingerprint() {
		t.Fatalf("equal rule sets disagree on fingerprint across name and order")
	}

	other, err := NewSynapse("Cats", NewRule(mustTriangle(t, 0, 5, 10)))
	if err != nil {
		t.Fatalf("NewSynapse: %v", err)
	}
	if cats.Fingerprint() == other.Fingerprint() {
		t.Fatalf("distinct rule sets share a fingerprint")
	}
}

func TestSynapseString(t *testing.T) {
	s, err := NewSynapse("Cats", NewRule(mustTriangle(t, 1, 2, 3)))
	if err != nil {
		t.Fatalf("NewSynapse: %v", err)
	}
	want := "Synapse: Cats\n\tRule: If 'x' is (1, 2, 3) then 'y' is 0\n"
	if got := s.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
