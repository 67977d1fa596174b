package sarsa

import (
	env "github.com/samuelfneumann/smartcab/environment"
)

// stubWorld is a deterministic World. Percepts and rewards are cycled
// through in order, and each Act moves the agent by move.
type stubWorld struct {
	percepts []env.Percept
	rewards  []float64
	senses   int
	acts     int

	deadline int
	location env.Location
	move     env.Location

	// senseErr is returned by every Sense after the first senseOK calls
	senseErr error
	senseOK  int
	actErr   error
	actions  []env.Action
}

func (w *stubWorld) Sense() (env.Percept, error) {
	if w.senseErr != nil && w.senses >= w.senseOK {
		return env.Percept{}, w.senseErr
	}
	p := w.percepts[w.senses%len(w.percepts)]
	w.senses++
	return p, nil
}

func (w *stubWorld) Deadline() int {
	return w.deadline
}

func (w *stubWorld) Act(a env.Action) (float64, error) {
	if w.actErr != nil {
		return 0, w.actErr
	}
	w.actions = append(w.actions, a)
	r := w.rewards[w.acts%len(w.rewards)]
	w.acts++
	w.location.X += w.move.X
	w.location.Y += w.move.Y
	return r, nil
}

func (w *stubWorld) Location() env.Location {
	return w.location
}

func (w *stubWorld) Distance(a, b env.Location) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// stubPlanner cycles through a fixed list of waypoints
type stubPlanner struct {
	waypoints   []env.Action
	calls       int
	destination env.Location
}

func (p *stubPlanner) RouteTo(destination env.Location) {
	p.destination = destination
}

func (p *stubPlanner) NextWaypoint() env.Action {
	w := p.waypoints[p.calls%len(p.waypoints)]
	p.calls++
	return w
}

// percept returns a valid Percept
func percept(light env.Light, oncoming, left env.Action) env.Percept {
	return env.Percept{
		Light:    light,
		Oncoming: oncoming,
		Left:     left,
		Right:    env.NoVehicle,
	}
}
