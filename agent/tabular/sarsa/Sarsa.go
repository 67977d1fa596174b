// Package sarsa implements a tabular, Sarsa-style learning agent that
// drives the primary vehicle of a traffic world.
//
// On every step the agent encodes its percepts into a state.Key, acts
// ε-greedily, and then samples a successor action ε-greedily in the
// successor state. The action value of the state-action pair just taken
// is moved toward the reward plus the discounted value of the sampled
// successor pair:
//
//	Q(s, a) ← (1 - α) Q(s, a) + α (r + γ Q(s', a'))
//
// Because a' is sampled from the behaviour policy instead of being the
// greedy action in s', the update is on-policy (Sarsa) and not
// Q-Learning.
package sarsa

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/smartcab/agent"
	"github.com/samuelfneumann/smartcab/agent/tabular/policy"
	"github.com/samuelfneumann/smartcab/agent/tabular/qtable"
	"github.com/samuelfneumann/smartcab/agent/tabular/state"
	env "github.com/samuelfneumann/smartcab/environment"
)

var _ agent.EGreedyPolicy = (*policy.EGreedy)(nil)

// Sarsa implements the learning agent
type Sarsa struct {
	world   env.World
	planner env.Planner

	table  *qtable.Table
	policy agent.EGreedyPolicy

	learningRate      float64
	discount          float64
	epsilonDecay      float64
	destinationReward float64

	// Per-trial context
	start    env.Location
	captured bool    // whether the first reward of the trial was seen
	initial  float64 // value given to every action of new states

	stats Stats
	seed  uint64
}

// New creates a new Sarsa agent driving in world w along routes given
// by planner p. All random decisions of the agent are drawn from a
// source seeded with seed.
func New(w env.World, p env.Planner, c Config, seed uint64) (*Sarsa,
	error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	table := qtable.New()
	source := rand.NewSource(seed)

	return &Sarsa{
		world:             w,
		planner:           p,
		table:             table,
		policy:            policy.NewEGreedy(c.Epsilon, table, source),
		learningRate:      c.LearningRate,
		discount:          c.Discount,
		epsilonDecay:      c.EpsilonDecay,
		destinationReward: c.DestinationReward,
		start:             w.Location(),
		seed:              seed,
	}, nil
}

// Reset prepares the agent for a new trial to destination. The
// exploration rate is decayed once per trial.
func (s *Sarsa) Reset(destination env.Location) {
	s.planner.RouteTo(destination)
	s.start = s.world.Location()
	s.captured = false
	s.policy.SetEpsilon(math.Max(0, s.policy.Epsilon()-s.epsilonDecay))
	s.stats.Trials++
}

// Step senses the world, acts, and updates the value table. It returns
// the action taken, or an error if the world or planner broke their
// contract. After an error the run should be abandoned; neither the
// value table nor the statistics include the failed step.
func (s *Sarsa) Step() (env.Action, error) {
	k, err := s.observe(state.PreAction)
	if err != nil {
		return 0, fmt.Errorf("step: %w", err)
	}
	deadline := s.world.Deadline()
	action := s.policy.SelectAction(k)

	reward, err := s.world.Act(action)
	if err != nil {
		return 0, fmt.Errorf("step: could not act %v: %w", action, err)
	}

	next, err := s.observe(state.PostAction)
	if err != nil {
		return 0, fmt.Errorf("step: %w", err)
	}

	if !s.captured {
		s.initial = reward
		s.captured = true
	}
	s.stats.observe(reward, s.destinationReward, deadline, s.displacement)

	nextAction := s.policy.SelectAction(next)

	s.table.Ensure(k, s.initial)
	s.table.Ensure(next, s.initial)

	target := reward + s.discount*s.table.At(next, nextAction)
	value := (1-s.learningRate)*s.table.At(k, action) +
		s.learningRate*target
	s.table.Set(k, action, value)

	return action, nil
}

// observe encodes the current percepts and waypoint with encode
func (s *Sarsa) observe(encode func(env.Percept, env.Action) (state.Key,
	error)) (state.Key, error) {
	percept, err := s.world.Sense()
	if err != nil {
		return state.Key{}, fmt.Errorf("could not sense: %w", err)
	}

	k, err := encode(percept, s.planner.NextWaypoint())
	if err != nil {
		return state.Key{}, fmt.Errorf("could not encode state: %w", err)
	}
	return k, nil
}

// displacement returns the distance between the start of the current
// trial and the agent's location
func (s *Sarsa) displacement() float64 {
	return s.world.Distance(s.start, s.world.Location())
}

// SelectAction selects an action in state k using the agent's policy
func (s *Sarsa) SelectAction(k state.Key) env.Action {
	return s.policy.SelectAction(k)
}

// Epsilon returns the current exploration rate
func (s *Sarsa) Epsilon() float64 {
	return s.policy.Epsilon()
}

// SetEpsilon sets the current exploration rate
func (s *Sarsa) SetEpsilon(e float64) {
	s.policy.SetEpsilon(e)
}

// Table returns the agent's value table
func (s *Sarsa) Table() *qtable.Table {
	return s.table
}

// Stats returns the statistics accumulated over all trials so far
func (s *Sarsa) Stats() Stats {
	return s.stats
}

func (s *Sarsa) String() string {
	str := "Sarsa | α: %v  |  γ: %v  |  ε: %.2f  |  States: %d  |  Seed: %d"

	return fmt.Sprintf(str, s.learningRate, s.discount, s.policy.Epsilon(),
		s.table.Len(), s.seed)
}
