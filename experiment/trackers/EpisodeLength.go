package trackers

import (
	ts "github.com/samuelfneumann/smartcab/timestep"
)

// EpisodeLength tracks and saves the lengths of trials in an
// experiment.
// Note that a trial must finish for this Tracker to save its data.
// If the last trial in an experiment does not finish, that trial's
// length will not be saved.
type EpisodeLength struct {
	episodeLengths []float64
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength saver which will save
// its data at the specified location filename
func NewEpisodeLength(filename string) *EpisodeLength {
	var saver EpisodeLength
	saver.filename = filename
	return &saver
}

// Track tracks the trial lengths in an experiment. When this function
// is called, it caches the trial length if the timestep passed to it
// is the last timestep in the trial.
func (e *EpisodeLength) Track(t ts.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, float64(t.Number))
	}
}

// Data returns the lengths of every finished trial
func (e *EpisodeLength) Data() []float64 {
	return e.episodeLengths
}

// Save saves the data tracked by the EpisodeLength Tracker to disk.
func (e *EpisodeLength) Save() error {
	return save(e.filename, e.episodeLengths)
}
