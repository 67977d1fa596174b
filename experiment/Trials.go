package experiment

import (
	"fmt"
	"io"
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/smartcab/agent"
	env "github.com/samuelfneumann/smartcab/environment"
	"github.com/samuelfneumann/smartcab/experiment/trackers"
	ts "github.com/samuelfneumann/smartcab/timestep"
	"github.com/samuelfneumann/smartcab/utils/progressbar"
)

// Trials is an experiment that runs an agent online for a fixed number
// of trials. Each trial starts at a fresh random location with a fresh
// destination and ends when the environment says it is done.
//
// Every TimeStep generated during the experiment is sent to each
// registered Tracker.
type Trials struct {
	environment env.Environment
	agent       agent.Agent
	trials      int
	current     int
	trackers    []trackers.Tracker

	returns  []float64
	arrivals int

	logger   *slog.Logger
	progress *progressbar.ManualProgressBar
}

// NewTrials creates and returns a new experiment of n trials on a given
// environment with a given agent. The t parameter determines what data
// is tracked.
func NewTrials(e env.Environment, a agent.Agent, n int,
	t ...trackers.Tracker) *Trials {
	return &Trials{
		environment: e,
		agent:       a,
		trials:      n,
		trackers:    t,
		logger:      slog.Default(),
	}
}

// Register registers a Tracker with the experiment so that data
// generated during the experiment can be tracked and saved
func (t *Trials) Register(tracker trackers.Tracker) {
	t.trackers = append(t.trackers, tracker)
}

// SetLogger sets the logger that trial outcomes are logged to
func (t *Trials) SetLogger(l *slog.Logger) {
	t.logger = l
}

// ShowProgress displays a progress bar on out while the experiment runs
func (t *Trials) ShowProgress(out io.Writer) {
	t.progress = progressbar.NewManualProgressBar(out, 40, t.trials)
}

// RunEpisode runs a single trial of the experiment
func (t *Trials) RunEpisode() error {
	destination := t.environment.Reset()
	t.agent.Reset(destination)

	step := t.environment.LastTimeStep()
	t.track(step)

	var ret float64
	for !t.environment.Done() {
		var err error
		step, err = t.environment.Step(t.agent)
		if err != nil {
			return fmt.Errorf("runEpisode: trial %d: %w", t.current, err)
		}
		ret += step.Reward
		t.track(step)
	}

	t.returns = append(t.returns, ret)
	if step.EndType() == ts.Arrived {
		t.arrivals++
	}
	t.logger.Debug("trial finished", "trial", t.current, "steps",
		step.Number, "return", ret, "end", step.EndType())

	t.current++
	return nil
}

// Run runs all remaining trials of the experiment. The first error
// encountered aborts the run.
func (t *Trials) Run() error {
	for t.current < t.trials {
		if err := t.RunEpisode(); err != nil {
			return fmt.Errorf("run: %w", err)
		}

		if t.progress != nil {
			t.progress.Increment()
			t.progress.Display()
		}
	}
	if t.progress != nil {
		t.progress.Close()
	}

	if len(t.returns) > 0 {
		t.logger.Info("experiment finished", "trials", t.current,
			"arrived", t.arrivals, "meanReturn", stat.Mean(t.returns, nil))
	}
	return nil
}

// Environment returns the environment the experiment runs in
func (t *Trials) Environment() env.Environment {
	return t.environment
}

// Agent returns the agent the experiment runs
func (t *Trials) Agent() agent.Agent {
	return t.agent
}

// Completed returns the number of trials run so far
func (t *Trials) Completed() int {
	return t.current
}

// Arrivals returns the number of trials in which the agent reached its
// destination
func (t *Trials) Arrivals() int {
	return t.arrivals
}

// Save saves all the data cached by the Trackers to disk
func (t *Trials) Save() error {
	for _, tracker := range t.trackers {
		if err := tracker.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each Tracker
func (t *Trials) track(step ts.TimeStep) {
	for _, tracker := range t.trackers {
		tracker.Track(step)
	}
}
