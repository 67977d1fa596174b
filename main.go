package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/logrusorgru/aurora"

	"github.com/samuelfneumann/smartcab/agent"
	"github.com/samuelfneumann/smartcab/agent/tabular/sarsa"
	"github.com/samuelfneumann/smartcab/agent/tabular/state"
	env "github.com/samuelfneumann/smartcab/environment"
	"github.com/samuelfneumann/smartcab/environment/envconfig"
	"github.com/samuelfneumann/smartcab/environment/smartcab"
	"github.com/samuelfneumann/smartcab/experiment"
	"github.com/samuelfneumann/smartcab/experiment/trackers"
	"github.com/samuelfneumann/smartcab/utils/matutils"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("smartcab failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("smartcab", flag.ContinueOnError)
	trials := fs.Int("trials", 100, "number of trials to run")
	seed := fs.Uint64("seed", 192382, "random seed")
	configFile := fs.String("config", "", "JSON experiment configuration")
	enforce := fs.Bool("enforce", true, "end trials when the deadline runs out")
	dummies := fs.Int("dummies", envconfig.DefaultDummies,
		"number of other vehicles")
	render := fs.String("render", "", "write a PNG of the final world state "+
		"to this file")
	dataDir := fs.String("data", "", "directory to save per-trial data in")
	chart := fs.String("chart", "", "write an HTML chart of the run to this "+
		"file")
	verbose := fs.Bool("v", false, "log every trial")
	progress := fs.Bool("progress", false, "show a progress bar")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	conf := experiment.Config{
		EnvConf:   envconfig.Default(),
		AgentConf: agent.NewTypedConfig(sarsa.DefaultConfig()),
	}
	if *configFile != "" {
		data, err := os.ReadFile(*configFile)
		if err != nil {
			return fmt.Errorf("run: could not read config: %w", err)
		}
		if err := json.Unmarshal(data, &conf); err != nil {
			return fmt.Errorf("run: could not decode config: %w", err)
		}
	}

	// Flags override the configuration file only when given explicitly
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if *configFile == "" || set["trials"] {
		conf.Trials = *trials
	}
	if *configFile == "" || set["seed"] {
		conf.Seed = *seed
	}
	if *configFile == "" || set["enforce"] {
		conf.EnvConf.EnforceDeadline = *enforce
	}
	if *configFile == "" || set["dummies"] {
		conf.EnvConf.Dummies = *dummies
	}

	var t []trackers.Tracker
	if *dataDir != "" {
		if err := os.MkdirAll(*dataDir, 0o755); err != nil {
			return fmt.Errorf("run: could not create data directory: %w", err)
		}
		t = append(t,
			trackers.NewReturn(filepath.Join(*dataDir, "return.bin")),
			trackers.NewEpisodeLength(filepath.Join(*dataDir, "length.bin")),
		)
	}
	if *chart != "" {
		t = append(t, trackers.NewChart(*chart))
	}

	exp, err := conf.CreateExp(t...)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if *progress {
		exp.ShowProgress(os.Stdout)
	}

	logger.Info("starting experiment", "trials", conf.Trials, "seed",
		conf.Seed, "agent", conf.AgentConf.Type)
	if err := exp.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if err := exp.Save(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if *render != "" {
		world, ok := exp.Environment().(*smartcab.Smartcab)
		if !ok {
			return fmt.Errorf("run: cannot render environment %T",
				exp.Environment())
		}
		if err := world.Render(*render); err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}

	if s, ok := exp.Agent().(*sarsa.Sarsa); ok {
		report(s)
	}
	return nil
}

// report prints the run statistics and learned table of a Sarsa agent
func report(s *sarsa.Sarsa) {
	r := s.Stats().Report()

	reach := aurora.Green(fmt.Sprintf("%.2f", r.ReachRate))
	if r.ReachRate < 0.5 {
		reach = aurora.Red(fmt.Sprintf("%.2f", r.ReachRate))
	}

	fmt.Println(aurora.Bold("Smartcab report"))
	fmt.Printf("  trials:            %d\n", r.Trials)
	fmt.Printf("  reach rate:        %v\n", reach)
	fmt.Printf("  positive / trial:  %v\n",
		aurora.Green(fmt.Sprintf("%.2f", r.AveragePositive)))
	fmt.Printf("  negative / trial:  %v\n",
		aurora.Red(fmt.Sprintf("%.2f", r.AverageNegative)))
	fmt.Printf("  time / trial:      %.2f\n", r.AverageTime)
	fmt.Printf("  velocity:          %.3f\n", r.AverageVelocity)
	fmt.Printf("  epsilon:           %.2f\n", s.Epsilon())

	fmt.Println()
	fmt.Println(aurora.Bold(fmt.Sprintf("Value table (%d/%d states seen)",
		s.Table().Len(), state.NumStates)))

	table := s.Table().Matrix()
	if table == nil {
		return
	}

	var rows []string
	for _, k := range s.Table().Keys() {
		rows = append(rows, k.String())
	}
	cols := make([]string, env.NumActions)
	for i, a := range env.Actions {
		cols[i] = a.String()
	}
	fmt.Print(matutils.FormatLabelled(table, rows, cols))
}
