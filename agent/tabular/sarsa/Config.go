package sarsa

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/agent"
	env "github.com/samuelfneumann/smartcab/environment"
)

func init() {
	// Register Config type so that it can be typed using
	// agent.TypedConfig to help with serialization/deserialization.
	agent.Register(agent.EGreedySarsaTabular, Config{})
}

// Default hyperparameters
const (
	DefaultLearningRate      float64 = 0.2
	DefaultDiscount          float64 = 0.8
	DefaultEpsilon           float64 = 0.5
	DefaultEpsilonDecay      float64 = 0.05
	DefaultDestinationReward float64 = 10.0
)

// Config represents a configuration for the Sarsa agent
type Config struct {
	LearningRate float64 // α
	Discount     float64 // γ

	// Epsilon is the initial exploration rate. It is decreased by
	// EpsilonDecay at the start of every trial, never dropping below 0.
	Epsilon      float64
	EpsilonDecay float64

	// DestinationReward is the smallest reward that counts as arriving
	// at the destination in the run statistics
	DestinationReward float64
}

// DefaultConfig returns the Config with default hyperparameters
func DefaultConfig() Config {
	return Config{
		LearningRate:      DefaultLearningRate,
		Discount:          DefaultDiscount,
		Epsilon:           DefaultEpsilon,
		EpsilonDecay:      DefaultEpsilonDecay,
		DestinationReward: DefaultDestinationReward,
	}
}

// CreateAgent creates the agent from the Config
func (c Config) CreateAgent(w env.World, p env.Planner,
	seed uint64) (agent.Agent, error) {
	return New(w, p, c, seed)
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*Sarsa)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.LearningRate < 0 || c.LearningRate > 1 {
		return fmt.Errorf("validate: learning rate must be in [0, 1], "+
			"have %v", c.LearningRate)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount must be in [0, 1], have %v",
			c.Discount)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("validate: epsilon must be in [0, 1], have %v",
			c.Epsilon)
	}
	if c.EpsilonDecay < 0 {
		return fmt.Errorf("validate: epsilon decay cannot be negative, "+
			"have %v", c.EpsilonDecay)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.EGreedySarsaTabular
}
