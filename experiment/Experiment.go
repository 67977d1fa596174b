// Package experiment implements functionality for running an experiment
package experiment

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/agent"
	"github.com/samuelfneumann/smartcab/environment/envconfig"
	"github.com/samuelfneumann/smartcab/experiment/trackers"
)

// Config represents a configuration of an experiment. A Config is
// JSON serializable so that whole experiments can be described in a
// single file.
type Config struct {
	Trials    int
	Seed      uint64
	EnvConf   envconfig.Config
	AgentConf agent.TypedConfig
}

// Validate returns an error describing whether the Config is valid
func (c Config) Validate() error {
	if c.Trials < 0 {
		return fmt.Errorf("validate: trials must be non-negative, have %v",
			c.Trials)
	}
	if c.AgentConf.Config == nil {
		return fmt.Errorf("validate: no agent configured")
	}
	if err := c.AgentConf.Validate(); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}

// CreateExp creates the experiment described by the Config. The
// environment and agent are both seeded with the Config's seed.
func (c Config) CreateExp(t ...trackers.Tracker) (*Trials, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createExp: %w", err)
	}

	e, err := c.EnvConf.Create(c.Seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create environment: %w",
			err)
	}

	a, err := c.AgentConf.CreateAgent(e, e.Planner(), c.Seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create agent: %w", err)
	}

	return NewTrials(e, a, c.Trials, t...), nil
}
