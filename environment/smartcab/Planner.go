package smartcab

import (
	env "github.com/samuelfneumann/smartcab/environment"
)

// navigator is anything that has a position and heading in the grid
type navigator interface {
	position() (env.Location, Heading)
}

// Planner is a route planner which always first closes the east-west
// distance to the destination and then the north-south distance.
// Travelling away from the destination is resolved with a right turn.
type Planner struct {
	nav         navigator
	destination env.Location
}

// newPlanner returns a new Planner for the vehicle nav
func newPlanner(nav navigator) *Planner {
	return &Planner{nav: nav}
}

// RouteTo sets the destination to plan routes to
func (p *Planner) RouteTo(destination env.Location) {
	p.destination = destination
}

// Destination returns the current destination
func (p *Planner) Destination() env.Location {
	return p.destination
}

// NextWaypoint returns the next manoeuvre along the route, or
// environment.Stay if the vehicle is at its destination
func (p *Planner) NextWaypoint() env.Action {
	location, h := p.nav.position()
	dx := p.destination.X - location.X
	dy := p.destination.Y - location.Y

	switch {
	case dx != 0:
		switch {
		case dx*h.DX > 0:
			return env.Forward
		case dx*h.DX < 0:
			return env.Right
		case dx*h.DY > 0:
			return env.Left
		default:
			return env.Right
		}

	case dy != 0:
		switch {
		case dy*h.DY > 0:
			return env.Forward
		case dy*h.DY < 0:
			return env.Right
		case dy*h.DX > 0:
			return env.Right
		default:
			return env.Left
		}
	}

	return env.Stay
}
