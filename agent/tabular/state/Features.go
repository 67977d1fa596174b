package state

import (
	"fmt"

	env "github.com/samuelfneumann/smartcab/environment"
)

// Polarity determines how the cross-traffic-from-left flag is read from
// a Percept.
//
// The driving agent reads the flag with opposite polarities before and
// after acting; see PreAction and PostAction.
type Polarity int

const (
	// LeftNotForward sets the flag unless the vehicle on the left is
	// proceeding forward
	LeftNotForward Polarity = iota

	// LeftForward sets the flag only if the vehicle on the left is
	// proceeding forward
	LeftForward
)

func (p Polarity) String() string {
	switch p {
	case LeftNotForward:
		return "LeftNotForward"
	case LeftForward:
		return "LeftForward"
	}
	return fmt.Sprintf("Polarity(%d)", int(p))
}

// OncomingConflict returns whether oncoming traffic conflicts with the
// agent. Only an empty slot or an oncoming vehicle turning left is
// considered free.
func OncomingConflict(oncoming env.Action) bool {
	return !(oncoming == env.NoVehicle || oncoming == env.Left)
}

// LeftCross returns the cross-traffic-from-left flag under polarity p
func LeftCross(left env.Action, p Polarity) bool {
	if p == LeftNotForward {
		return left != env.Forward
	}
	return left == env.Forward
}

// HeadingOf converts a planner waypoint into a Key heading. A Stay
// waypoint, which the planner returns once the destination has been
// reached, folds into the Right slot.
func HeadingOf(waypoint env.Action) (env.Action, error) {
	switch waypoint {
	case env.Forward, env.Left, env.Right:
		return waypoint, nil
	case env.Stay:
		return env.Right, nil
	}
	return 0, fmt.Errorf("headingOf: invalid waypoint %v", waypoint)
}

// FromPercept encodes a Percept and planner waypoint into a Key, reading
// the left cross traffic flag with polarity p
func FromPercept(p env.Percept, waypoint env.Action,
	polarity Polarity) (Key, error) {
	if err := p.Validate(); err != nil {
		return Key{}, fmt.Errorf("fromPercept: %w", err)
	}

	heading, err := HeadingOf(waypoint)
	if err != nil {
		return Key{}, fmt.Errorf("fromPercept: %w", err)
	}

	return Encode(p.Light, OncomingConflict(p.Oncoming),
		LeftCross(p.Left, polarity), heading)
}

// PreAction encodes the state observed before the agent acts
func PreAction(p env.Percept, waypoint env.Action) (Key, error) {
	return FromPercept(p, waypoint, LeftNotForward)
}

// PostAction encodes the successor state observed after the agent acts
func PostAction(p env.Percept, waypoint env.Action) (Key, error) {
	return FromPercept(p, waypoint, LeftForward)
}
