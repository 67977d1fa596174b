// Package agent defines the interfaces of driving agents
package agent

import (
	"github.com/samuelfneumann/smartcab/agent/tabular/state"
	env "github.com/samuelfneumann/smartcab/environment"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent drives the primary vehicle of an environment. Reset is
// called once at the start of each trial with the trial's destination,
// and Step once per tick of the trial. Step queries the agent's World
// and Planner, acts, and learns from the resulting reward.
type Agent interface {
	env.Driver
	Reset(destination env.Location)
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions in discrete states.
// A Policy and the Learner it belongs to should share the same value
// table so that any change the Learner makes is reflected in the
// actions the Policy chooses.
type Policy interface {
	SelectAction(k state.Key) env.Action
}

// EGreedyPolicy is a Policy whose exploration rate can be set and
// retrieved.
type EGreedyPolicy interface {
	Policy
	SetEpsilon(float64)
	Epsilon() float64
}
