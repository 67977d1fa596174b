// Package policy implements policies over tabular action values
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/smartcab/agent/tabular/qtable"
	"github.com/samuelfneumann/smartcab/agent/tabular/state"
	env "github.com/samuelfneumann/smartcab/environment"
	"github.com/samuelfneumann/smartcab/utils/floatutils"
)

// EGreedy implements an ε-greedy policy over a qtable.Table.
//
// With probability ε an action is chosen uniformly at random. Otherwise
// the policy chooses uniformly among the actions of maximum value. In
// states that are not yet in the table, actions are chosen uniformly at
// random.
//
// The policy reads the table but never modifies it, so the table can be
// shared with a learner.
type EGreedy struct {
	table   *qtable.Table
	explore distuv.Bernoulli
	rng     *rand.Rand
}

// NewEGreedy returns a new EGreedy policy over table with exploration
// rate e. All random decisions are drawn from source.
func NewEGreedy(e float64, table *qtable.Table, source rand.Source) *EGreedy {
	if e < 0 || e > 1 {
		panic(fmt.Sprintf("newEGreedy: epsilon must be in [0, 1], have %v", e))
	}

	return &EGreedy{
		table:   table,
		explore: distuv.Bernoulli{P: e, Src: source},
		rng:     rand.New(source),
	}
}

// SelectAction selects an action in state k
func (p *EGreedy) SelectAction(k state.Key) env.Action {
	if p.explore.Rand() == 1 {
		return p.random()
	}

	values, ok := p.table.Values(k)
	if !ok {
		return p.random()
	}

	_, greedy := floatutils.MaxSlice(values[:])
	return env.Actions[greedy[p.rng.Intn(len(greedy))]]
}

func (p *EGreedy) random() env.Action {
	return env.Actions[p.rng.Intn(env.NumActions)]
}

// Epsilon returns the current exploration rate
func (p *EGreedy) Epsilon() float64 {
	return p.explore.P
}

// SetEpsilon sets the exploration rate, clipping it to [0, 1]
func (p *EGreedy) SetEpsilon(e float64) {
	p.explore.P = floatutils.Clip(e, 0, 1)
}
