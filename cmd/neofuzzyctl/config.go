package main

import (
	"encoding/json"
	"fmt"
	"os"
)

type runRequest struct {
	Target       string
	Steps        int
	Seed         int64
	Rules        int
	LearningRate float64
}

func loadRunRequestFromConfig(path string) (runRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return runRequest{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return runRequest{}, err
	}

	var req runRequest
	if v, ok := asString(raw["target"]); ok {
		req.Target = v
	}
	if v, ok := asInt(raw["steps"]); ok {
		req.Steps = v
	}
	if v, ok := asInt64(raw["seed"]); ok {
		req.Seed = v
	}
	if v, ok := asInt(raw["rules"]); ok {
		req.Rules = v
	}
	if v, ok := asFloat64(raw["learning_rate"]); ok {
		req.LearningRate = v
	}
	return req, nil
}

func loadOrDefaultRunRequest(configPath string) (runRequest, error) {
	if configPath == "" {
		return runRequest{}, nil
	}
	req, err := loadRunRequestFromConfig(configPath)
	if err != nil {
		return runRequest{}, fmt.Errorf("load config: %w", err)
	}
	return req, nil
}

func overrideFromFlags(req *runRequest, set map[string]bool, flagValue map[string]any) {
	for name := range set {
		v, ok := flagValue[name]
		if !ok {
			continue
		}
		switch name {
		case "target":
			req.Target = v.(string)
		case "steps":
			req.Steps = v.(int)
		case "seed":
			req.Seed = v.(int64)
		case "rules":
			req.Rules = v.(int)
		case "rate":
			req.LearningRate = v.(float64)
		}
	}
	if req.Target == "" {
		req.Target = "mixture"
	}
	if req.Steps == 0 {
		req.Steps = 500
	}
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case float64:
		return int(x), true
	default:
		return 0, false
	}
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case float64:
		return int64(x), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}
