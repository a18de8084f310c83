package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"neofuzzy/internal/approx"
	"neofuzzy/internal/model"
	"neofuzzy/internal/stats"
	"neofuzzy/internal/storage"
	"neofuzzy/pkg/neofuzzy"
)

const defaultArtifactsDir = "runs"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "approx":
		return runApprox(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "show":
		return runShow(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runApprox(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("approx", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional run request JSON path")
	targetName := fs.String("target", "mixture", "target surface: mixture|wave")
	steps := fs.Int("steps", 500, "online learning steps")
	seed := fs.Int64("seed", 1, "rng seed")
	rules := fs.Int("rules", 0, "rules per input variable (0 uses the library default)")
	rate := fs.Float64("rate", 0, "fixed learning rate (0 derives the optimal rate per step)")
	storeKind := fs.String("store", "none", "run record store: none|memory|sqlite")
	dbPath := fs.String("db", "neofuzzy.db", "sqlite database path")
	artifactsDir := fs.String("artifacts", defaultArtifactsDir, "artifacts directory (empty disables)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	req, err := loadOrDefaultRunRequest(*configPath)
	if err != nil {
		return err
	}
	if *configPath == "" {
		req = runRequest{
			Target:       *targetName,
			Steps:        *steps,
			Seed:         *seed,
			Rules:        *rules,
			LearningRate: *rate,
		}
	} else {
		overrideFromFlags(&req, setFlags, map[string]any{
			"target": *targetName,
			"steps":  *steps,
			"seed":   *seed,
			"rules":  *rules,
			"rate":   *rate,
		})
	}

	target, err := approx.TargetFromName(req.Target)
	if err != nil {
		return err
	}

	result, err := approx.Run(ctx, approx.RunConfig{
		Target:       target,
		Steps:        req.Steps,
		Seed:         req.Seed,
		Rules:        req.Rules,
		LearningRate: req.LearningRate,
	})
	if err != nil {
		return err
	}

	ruleCount := req.Rules
	if ruleCount == 0 {
		ruleCount = neofuzzy.DefaultRuleCount
	}
	record := model.RunRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		ID:           uuid.NewString(),
		CreatedAtUTC: time.Now().UTC().Format(time.RFC3339),
		Target:       req.Target,
		Steps:        result.Steps,
		Seed:         req.Seed,
		RuleCount:    ruleCount,
		LearningRate: req.LearningRate,
		FinalError:   result.FinalError,
		ErrorHistory: result.History,
	}

	rateMode := "optimal"
	if req.LearningRate != 0 {
		rateMode = fmt.Sprintf("fixed %g", req.LearningRate)
	}
	fmt.Printf("run completed run_id=%s target=%s steps=%d seed=%d rules=%d rate=%s\n",
		record.ID, record.Target, record.Steps, record.Seed, record.RuleCount, rateMode)
	fmt.Printf("initial_abs_error=%.6f final_abs_error=%.6f\n", result.History[0], result.FinalError)
	for _, point := range stats.BuildErrorPlot(result.History, 10) {
		fmt.Printf("step=%d avg_abs_error=%.6f\n", point.Index+1, point.Value)
	}

	if *storeKind != "none" {
		store, err := storage.NewStore(*storeKind, *dbPath)
		if err != nil {
			return err
		}
		defer func() {
			_ = storage.CloseIfSupported(store)
		}()
		if err := store.Init(ctx); err != nil {
			return err
		}
		if err := store.SaveRun(ctx, record); err != nil {
			return err
		}
		fmt.Printf("saved store=%s\n", *storeKind)
	}

	if *artifactsDir != "" {
		runDir, err := stats.WriteRunArtifacts(*artifactsDir, stats.RunArtifacts{Record: record})
		if err != nil {
			return err
		}
		if err := stats.AppendRunIndex(*artifactsDir, stats.RunIndexEntry{
			RunID:        record.ID,
			Target:       record.Target,
			Steps:        record.Steps,
			Seed:         record.Seed,
			RuleCount:    record.RuleCount,
			FinalError:   record.FinalError,
			CreatedAtUTC: record.CreatedAtUTC,
		}); err != nil {
			return err
		}
		fmt.Printf("artifacts_dir=%s\n", filepath.Clean(runDir))
	}
	return nil
}

func runRuns(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	artifactsDir := fs.String("artifacts", defaultArtifactsDir, "artifacts directory")
	limit := fs.Int("limit", 20, "max runs to list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit <= 0 {
		return errors.New("limit must be > 0")
	}

	entries, err := stats.ListRunIndex(*artifactsDir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	if len(entries) > *limit {
		entries = entries[:*limit]
	}
	for _, e := range entries {
		created := e.CreatedAtUTC
		if ts, err := time.Parse(time.RFC3339, e.CreatedAtUTC); err == nil {
			created = humanize.Time(ts)
		}
		fmt.Printf("run_id=%s target=%s steps=%s seed=%d rules=%d final_abs_error=%.6f created=%s\n",
			e.RunID,
			e.Target,
			humanize.Comma(int64(e.Steps)),
			e.Seed,
			e.RuleCount,
			e.FinalError,
			created,
		)
	}
	return nil
}

func runShow(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	targetName := fs.String("target", "mixture", "target surface: mixture|wave")
	rules := fs.Int("rules", 0, "rules per input variable (0 uses the library default)")
	at := fs.String("at", "", "comma-separated input values, one per variable")
	if err := fs.Parse(args); err != nil {
		return err
	}

	target, err := approx.TargetFromName(*targetName)
	if err != nil {
		return err
	}
	variables := target.Variables()
	if *rules != 0 {
		for i := range variables {
			variables[i].Rules = *rules
		}
	}
	neuron, err := neofuzzy.BuildNeuron(neofuzzy.NeuronConfig{Variables: variables})
	if err != nil {
		return err
	}

	fmt.Print(neuron.String())
	if *at == "" {
		return nil
	}

	inputs, err := parseInputs(variables, *at)
	if err != nil {
		return err
	}
	for _, in := range inputs {
		fmt.Printf("input %s\n", in.String())
	}
	output, err := neuron.Calculate(inputs)
	if err != nil {
		return err
	}
	rate, err := neuron.OptimalLearningRate(inputs)
	if err != nil {
		return err
	}
	fmt.Printf("output=%g optimal_learning_rate=%g\n", output, rate)
	return nil
}

func parseInputs(variables []neofuzzy.SynapseConfig, at string) ([]neofuzzy.Input, error) {
	parts := strings.Split(at, ",")
	if len(parts) != len(variables) {
		return nil, fmt.Errorf("expected %d input values, got %d", len(variables), len(parts))
	}
	inputs := make([]neofuzzy.Input, len(parts))
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("parse input value %q: %w", part, err)
		}
		inputs[i] = neofuzzy.Input{Name: variables[i].Name, Value: value}
	}
	return inputs, nil
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: neofuzzyctl <approx|runs|show> [flags]", msg)
}
