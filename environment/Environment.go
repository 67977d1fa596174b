// Package environment outlines the interfaces and types an agent uses to
// drive inside a discrete traffic world. Concrete worlds live in
// subpackages.
package environment

import (
	"fmt"

	"github.com/samuelfneumann/smartcab/timestep"
)

// Light is the colour of the traffic light facing a vehicle
type Light int

const (
	Green Light = iota
	Red
)

func (l Light) String() string {
	switch l {
	case Green:
		return "green"
	case Red:
		return "red"
	}
	return fmt.Sprintf("Light(%d)", int(l))
}

// Valid returns whether l is a known light colour
func (l Light) Valid() bool {
	return l == Green || l == Red
}

// Location is an intersection in the grid, given as (x, y) coordinates
type Location struct {
	X, Y int
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.X, l.Y)
}

// Percept bundles everything a vehicle can observe at its current
// intersection. Each traffic field holds the intended manoeuvre of the
// vehicle approaching from that side, or NoVehicle if there is none.
type Percept struct {
	Light    Light
	Oncoming Action
	Left     Action
	Right    Action
}

// Validate returns an error if any field of the Percept holds a value
// outside of its domain
func (p Percept) Validate() error {
	if !p.Light.Valid() {
		return fmt.Errorf("validate: invalid light %v", p.Light)
	}
	if !p.Oncoming.Valid() && p.Oncoming != NoVehicle {
		return fmt.Errorf("validate: invalid oncoming traffic %v", p.Oncoming)
	}
	if !p.Left.Valid() && p.Left != NoVehicle {
		return fmt.Errorf("validate: invalid left traffic %v", p.Left)
	}
	if !p.Right.Valid() && p.Right != NoVehicle {
		return fmt.Errorf("validate: invalid right traffic %v", p.Right)
	}
	return nil
}

func (p Percept) String() string {
	return fmt.Sprintf("light: %v  |  oncoming: %v  |  left: %v  |  "+
		"right: %v", p.Light, p.Oncoming, p.Left, p.Right)
}

// World is the view of the simulator that a single driving agent has.
//
// Sense and Deadline describe the agent's current situation, Act
// executes a manoeuvre and returns its reward. Location and Distance
// are used for displacement accounting.
type World interface {
	Sense() (Percept, error)
	Deadline() int
	Act(a Action) (float64, error)
	Location() Location
	Distance(a, b Location) float64
}

// Planner computes the next manoeuvre required to follow the route to a
// destination. NextWaypoint returns Stay once the destination has been
// reached.
type Planner interface {
	RouteTo(destination Location)
	NextWaypoint() Action
}

// Environment is a world that can be run for repeated trials.
//
// Reset starts a new trial and returns its destination. Step advances
// time by one tick, during which d drives the primary vehicle through
// the World methods. Planner returns the route planner of the primary
// vehicle.
type Environment interface {
	World
	Planner() Planner
	Reset() Location
	Step(d Driver) (timestep.TimeStep, error)
	Done() bool
	LastTimeStep() timestep.TimeStep
}

// Driver is the primary agent of an Environment. Step is called once
// per tick and must call World.Act exactly once.
type Driver interface {
	Step() (Action, error)
}
