// Package approx drives online approximation demos: it samples a target
// surface, feeds the samples through a neo-fuzzy-neuron one step at a
// time, and records the error trajectory.
package approx

import (
	"fmt"
	"math"
	"sort"

	"neofuzzy/pkg/neofuzzy"
)

// Target is a function surface the demo runner approximates. Eval is
// called with inputs in Variables() order.
type Target interface {
	Name() string
	Variables() []neofuzzy.SynapseConfig
	Eval(inputs []neofuzzy.Input) float64
}

// Mixture is a smooth two-variable surface over sand and water amounts.
type Mixture struct{}

func (Mixture) Name() string { return "mixture" }

func (Mixture) Variables() []neofuzzy.SynapseConfig {
	return []neofuzzy.SynapseConfig{
		{Name: "Sand", Lower: 0, Upper: 100},
		{Name: "Water", Lower: 0, Upper: 1000},
	}
}

func (Mixture) Eval(inputs []neofuzzy.Input) float64 {
	sand := inputs[0].Value
	water := inputs[1].Value
	return 0.6*sand + 0.04*water + 25*math.Sin(sand/15)*math.Cos(water/140) + 10
}

// Wave is a damped sine over a single phase variable.
type Wave struct{}

func (Wave) Name() string { return "wave" }

func (Wave) Variables() []neofuzzy.SynapseConfig {
	return []neofuzzy.SynapseConfig{
		{Name: "Phase", Lower: 0, Upper: 4 * math.Pi},
	}
}

func (Wave) Eval(inputs []neofuzzy.Input) float64 {
	phase := inputs[0].Value
	return 10 * math.Exp(-phase/5) * math.Sin(phase)
}

func TargetFromName(name string) (Target, error) {
	switch name {
	case "mixture":
		return Mixture{}, nil
	case "wave":
		return Wave{}, nil
	default:
		return nil, fmt.Errorf("unknown target: %s", name)
	}
}

func TargetNames() []string {
	names := []string{"mixture", "wave"}
	sort.Strings(names)
	return names
}
