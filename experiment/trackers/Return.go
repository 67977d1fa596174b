package trackers

import (
	"fmt"

	ts "github.com/samuelfneumann/smartcab/timestep"
)

// Return tracks and saves the return of each trial in an experiment.
// When an environment returns a TimeStep, this Tracker will extract the
// reward and accumulate the return for each trial in the experiment.
//
// Note: A trial must finish for this Tracker to save its data.
// If the last trial in an experiment does not finish, that trial's
// return will not be saved.
type Return struct {
	lastTimeStep   int
	currentReturn  float64
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker
func NewReturn(filename string) *Return {
	var saver Return
	saver.lastTimeStep = -1
	saver.filename = filename
	return &saver
}

// Track tracks the rewards seen on a timestep. By calling this method
// on every timestep, the Tracker will store all rewards seen in the
// trial, and save the cumulative reward for that trial as its return.
// When a new trial starts, this method will automatically detect this
// and start accumulating the rewards for this new trial separately
// from the rewards seen on previous trials.
//
// Track panics if it is called for non-sequential timesteps
func (r *Return) Track(step ts.TimeStep) {
	// Ensure that Track is called on sequential timesteps
	if r.lastTimeStep+1 != step.Number {
		msg := fmt.Sprintf("track: last two timesteps tracked are not "+
			"sequential: timestep %v --> timestep %v were tracked",
			r.lastTimeStep, step.Number)
		panic(msg)
	}

	r.currentReturn += step.Reward
	if !step.Last() {
		r.lastTimeStep = step.Number
		return
	}

	// Trial has ended, save the return and begin tracking the return
	// for a new trial
	r.episodeReturns = append(r.episodeReturns, r.currentReturn)
	r.currentReturn = 0.0
	r.lastTimeStep = -1
}

// Data returns the returns of every finished trial
func (r *Return) Data() []float64 {
	return r.episodeReturns
}

// Save saves the data tracked by the Return Tracker to disk.
func (r *Return) Save() error {
	return save(r.filename, r.episodeReturns)
}
