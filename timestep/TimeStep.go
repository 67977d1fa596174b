// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType determines how an episode ended
type EndType int

const (
	// Arrived indicates the agent reached its destination
	Arrived EndType = iota

	// Timeout indicates the episode was cut off by its deadline
	Timeout

	// Unfinished indicates the episode has not ended
	Unfinished
)

func (e EndType) String() string {
	switch e {
	case Arrived:
		return "Arrived"
	case Timeout:
		return "Timeout"
	default:
		return "Unfinished"
	}
}

// TimeStep packages together a single timestep in an environment
type TimeStep struct {
	StepType
	Reward   float64
	Deadline int
	Number   int
	endType  EndType
}

// New returns a new TimeStep. Last timesteps should have their end
// type set with SetEnd.
func New(t StepType, r float64, deadline, n int) TimeStep {
	return TimeStep{t, r, deadline, n, Unfinished}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd sets the ending type of the TimeStep
func (t *TimeStep) SetEnd(e EndType) {
	t.endType = e
}

// EndType returns how the episode ended, or Unfinished if the TimeStep
// is not the last in its episode
func (t *TimeStep) EndType() EndType {
	return t.endType
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Deadline: %d  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Deadline, t.Number)
}
