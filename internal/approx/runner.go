package approx

import (
	"context"
	"errors"
	"math"
	"math/rand"

	"neofuzzy/pkg/neofuzzy"
)

type RunConfig struct {
	Target Target
	Steps  int
	Seed   int64
	// Rules overrides the per-variable rule count when > 0.
	Rules int
	// LearningRate fixes the step size; 0 derives the optimal rate per step.
	LearningRate float64
}

type RunResult struct {
	History    []float64
	FinalError float64
	Steps      int
}

// Run performs cfg.Steps online learning steps against the target,
// sampling each variable uniformly in its range. The recorded error is
// the post-step absolute error at the sampled point. Deterministic for a
// fixed seed.
func Run(ctx context.Context, cfg RunConfig) (RunResult, error) {
	if cfg.Target == nil {
		return RunResult{}, errors.New("target is required")
	}
	if cfg.Steps <= 0 {
		return RunResult{}, errors.New("steps must be > 0")
	}
	if cfg.LearningRate < 0 {
		return RunResult{}, errors.New("learning rate must be >= 0")
	}
	if cfg.Rules < 0 {
		return RunResult{}, errors.New("rule count must be >= 0")
	}

	variables := cfg.Target.Variables()
	if cfg.Rules > 0 {
		for i := range variables {
			variables[i].Rules = cfg.Rules
		}
	}
	neuron, err := neofuzzy.BuildNeuron(neofuzzy.NeuronConfig{Variables: variables})
	if err != nil {
		return RunResult{}, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	history := make([]float64, 0, cfg.Steps)
	inputs := make([]neofuzzy.Input, len(variables))

	for step := 0; step < cfg.Steps; step++ {
		select {
		case <-ctx.Done():
			return RunResult{}, ctx.Err()
		default:
		}

		for i, variable := range variables {
			value := variable.Lower + rng.Float64()*(variable.Upper-variable.Lower)
			inputs[i] = neofuzzy.Input{Name: variable.Name, Value: value}
		}
		desired := cfg.Target.Eval(inputs)

		if cfg.LearningRate == 0 {
			if err := neuron.Learn(inputs, desired); err != nil {
				return RunResult{}, err
			}
		} else {
			output, err := neuron.Calculate(inputs)
			if err != nil {
				return RunResult{}, err
			}
			if err := neuron.LearnWithRate(inputs, output, desired, cfg.LearningRate); err != nil {
				return RunResult{}, err
			}
		}

		after, err := neuron.Calculate(inputs)
		if err != nil {
			return RunResult{}, err
		}
		history = append(history, math.Abs(after-desired))
	}

	return RunResult{
		History:    history,
		FinalError: history[len(history)-1],
		Steps:      cfg.Steps,
	}, nil
}
