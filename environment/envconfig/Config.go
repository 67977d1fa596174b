// Package envconfig provides configuration structs for configuring
// environments with default parameters. Environment configurations in
// this package are JSON serializable.
package envconfig

import (
	"fmt"

	env "github.com/samuelfneumann/smartcab/environment"
	"github.com/samuelfneumann/smartcab/environment/smartcab"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	Smartcab EnvName = "Smartcab"
)

// Default Smartcab parameters
const (
	DefaultWidth   int = 8
	DefaultHeight  int = 6
	DefaultDummies int = 3
)

// Config implements a specific configuration of a specific environment
type Config struct {
	Environment     EnvName
	Width           int
	Height          int
	Dummies         int
	EnforceDeadline bool
}

// NewConfig returns a new environment Config
func NewConfig(envName EnvName, width, height, dummies int,
	enforceDeadline bool) Config {
	return Config{
		Environment:     envName,
		Width:           width,
		Height:          height,
		Dummies:         dummies,
		EnforceDeadline: enforceDeadline,
	}
}

// Default returns the default Smartcab configuration
func Default() Config {
	return NewConfig(Smartcab, DefaultWidth, DefaultHeight, DefaultDummies,
		true)
}

// Create returns the environment described by the Config
func (c Config) Create(seed uint64) (env.Environment, error) {
	switch c.Environment {
	case Smartcab:
		s, err := smartcab.New(c.Width, c.Height, c.Dummies,
			c.EnforceDeadline, seed)
		if err != nil {
			return nil, fmt.Errorf("create: %w", err)
		}
		return s, nil
	}

	return nil, fmt.Errorf("create: cannot create environment %v, no such "+
		"environment", c.Environment)
}
