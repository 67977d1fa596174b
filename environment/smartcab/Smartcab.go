// Package smartcab implements a discrete, turn-based traffic world.
//
// The world is a torus-shaped grid of intersections, each with a
// traffic light that periodically switches between letting north-south
// and east-west traffic through. A primary vehicle, driven by a learning
// agent, must reach a destination before its deadline while a number of
// dummy vehicles wander the grid at random, obeying the traffic rules.
//
// Rewards for the primary vehicle are:
//
//	+2.0   legal move that follows the planner's waypoint
//	-0.5   legal move against the planner's waypoint
//	-1.0   illegal move (the vehicle does not move)
//	 0.0   staying put
//	+10    bonus for reaching the destination within the deadline
package smartcab

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"

	env "github.com/samuelfneumann/smartcab/environment"
	ts "github.com/samuelfneumann/smartcab/timestep"
)

const (
	// MinDistance is the smallest distance between the start and
	// destination of a trial
	MinDistance int = 4

	// DeadlineFactor is the number of ticks allowed per unit of distance
	// between start and destination
	DeadlineFactor int = 5

	// HardTimeLimit ends a trial whether or not deadlines are enforced
	HardTimeLimit int = -100

	DestinationReward float64 = 10.0
)

// vehicle is the state of a single vehicle in the world
type vehicle struct {
	location    env.Location
	heading     Heading
	destination env.Location
	deadline    int

	// waypoint is the manoeuvre the vehicle intends to make next, as
	// seen by other vehicles
	waypoint func() env.Action
}

func (v *vehicle) position() (env.Location, Heading) {
	return v.location, v.heading
}

// Smartcab is the traffic world. The World methods of a Smartcab act
// on behalf of the primary vehicle.
type Smartcab struct {
	x0, y0, x1, y1 int // bounds of the grid, inclusive

	lights   map[env.Location]*TrafficLight
	primary  *vehicle
	planner  *Planner
	dummies  []*vehicle
	intended []env.Action // next waypoint of each dummy

	enforceDeadline bool
	rng             *rand.Rand
	t               int
	done            bool
	acted           bool

	reward      float64
	currentStep ts.TimeStep
}

// New creates a new Smartcab world with width × height intersections
// and the given number of dummy vehicles. If enforceDeadline is true,
// trials end when the primary vehicle's deadline runs out. Otherwise
// they only end at HardTimeLimit.
func New(width, height, dummies int, enforceDeadline bool,
	seed uint64) (*Smartcab, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("new: grid must be at least 1x1, have %dx%d",
			width, height)
	}
	if width-1+height-1 < MinDistance {
		return nil, fmt.Errorf("new: %dx%d grid cannot hold a route of "+
			"distance %d", width, height, MinDistance)
	}
	if dummies < 0 {
		return nil, fmt.Errorf("new: number of dummies cannot be negative, "+
			"have %d", dummies)
	}
	if dummies >= width*height {
		return nil, fmt.Errorf("new: %dx%d grid cannot hold %d dummies",
			width, height, dummies)
	}

	rng := rand.New(rand.NewSource(seed))
	s := &Smartcab{
		x0:              1,
		y0:              1,
		x1:              width,
		y1:              height,
		lights:          make(map[env.Location]*TrafficLight),
		dummies:         make([]*vehicle, dummies),
		intended:        make([]env.Action, dummies),
		enforceDeadline: enforceDeadline,
		rng:             rng,
		done:            true,
	}

	for x := s.x0; x <= s.x1; x++ {
		for y := s.y0; y <= s.y1; y++ {
			s.lights[env.Location{X: x, Y: y}] = newTrafficLight(rng)
		}
	}

	s.primary = &vehicle{}
	s.planner = newPlanner(s.primary)
	s.primary.waypoint = s.planner.NextWaypoint

	for i := range s.dummies {
		i := i
		s.dummies[i] = &vehicle{
			waypoint: func() env.Action { return s.intended[i] },
		}
	}

	return s, nil
}

// Planner returns the route planner of the primary vehicle
func (s *Smartcab) Planner() env.Planner {
	return s.planner
}

// Reset starts a new trial, placing every vehicle at a random
// intersection with a random heading. It returns the destination of
// the primary vehicle.
func (s *Smartcab) Reset() env.Location {
	s.t = 0
	s.done = false
	s.acted = false
	s.reward = 0
	for _, light := range s.lights {
		light.reset()
	}

	start := s.randomLocation()
	destination := s.randomLocation()
	for s.Distance(start, destination) < float64(MinDistance) {
		start = s.randomLocation()
		destination = s.randomLocation()
	}

	s.primary.location = start
	s.primary.heading = s.randomHeading()
	s.primary.destination = destination
	s.primary.deadline = int(s.Distance(start, destination)) * DeadlineFactor

	occupied := map[env.Location]bool{start: true}
	for i, d := range s.dummies {
		d.location = s.randomLocation()
		for occupied[d.location] {
			d.location = s.randomLocation()
		}
		occupied[d.location] = true
		d.heading = s.randomHeading()
		s.intended[i] = s.randomWaypoint()
	}

	s.currentStep = ts.New(ts.First, 0, s.primary.deadline, 0)
	return destination
}

// Step advances the world by one tick. Lights are updated, then every
// dummy moves, then d drives the primary vehicle. Step returns an error
// if the trial is over or if d fails or does not act exactly once.
func (s *Smartcab) Step(d env.Driver) (ts.TimeStep, error) {
	if s.done {
		return ts.TimeStep{}, fmt.Errorf("step: trial is over, call Reset")
	}

	for _, light := range s.lights {
		light.update(s.t)
	}

	for i, dummy := range s.dummies {
		s.driveDummy(i, dummy)
	}

	deadline := s.primary.deadline
	s.acted = false
	if _, err := d.Step(); err != nil {
		return ts.TimeStep{}, fmt.Errorf("step: driver failed: %w", err)
	}
	if !s.acted {
		return ts.TimeStep{}, fmt.Errorf("step: driver did not act")
	}
	s.t++

	end := ts.Arrived
	if !s.done {
		switch {
		case deadline <= HardTimeLimit:
			s.done = true
			end = ts.Timeout

		case s.enforceDeadline && deadline <= 0:
			s.done = true
			end = ts.Timeout
		}
	}
	s.primary.deadline--

	stepType := ts.Mid
	if s.done {
		stepType = ts.Last
	}
	step := ts.New(stepType, s.reward, deadline, s.currentStep.Number+1)
	if s.done {
		step.SetEnd(end)
	}
	s.currentStep = step

	return step, nil
}

// Done returns whether the current trial has ended
func (s *Smartcab) Done() bool {
	return s.done
}

// LastTimeStep returns the most recent TimeStep
func (s *Smartcab) LastTimeStep() ts.TimeStep {
	return s.currentStep
}

// Sense returns the percepts of the primary vehicle
func (s *Smartcab) Sense() (env.Percept, error) {
	return s.sense(s.primary), nil
}

// Deadline returns the number of ticks the primary vehicle has left
func (s *Smartcab) Deadline() int {
	return s.primary.deadline
}

// Location returns the location of the primary vehicle
func (s *Smartcab) Location() env.Location {
	return s.primary.location
}

// Heading returns the heading of the primary vehicle
func (s *Smartcab) Heading() Heading {
	return s.primary.heading
}

// Distance returns the Manhattan distance between a and b
func (s *Smartcab) Distance(a, b env.Location) float64 {
	return floats.Distance(
		[]float64{float64(a.X), float64(a.Y)},
		[]float64{float64(b.X), float64(b.Y)},
		1,
	)
}

// Act moves the primary vehicle and returns its reward. Act returns an
// error if a is not a valid action or if the primary vehicle has
// already acted this tick.
func (s *Smartcab) Act(a env.Action) (float64, error) {
	if !a.Valid() {
		return 0, fmt.Errorf("act: invalid action %v", a)
	}
	if s.acted {
		return 0, fmt.Errorf("act: primary vehicle already acted this tick")
	}
	if s.done {
		return 0, fmt.Errorf("act: trial is over")
	}
	s.acted = true

	reward := s.move(s.primary, a)
	if s.primary.location == s.primary.destination {
		if s.primary.deadline >= 0 {
			reward += DestinationReward
		}
		s.done = true
	}

	s.reward = reward
	return reward, nil
}

// sense returns the percepts of vehicle v
func (s *Smartcab) sense(v *vehicle) env.Percept {
	p := env.Percept{
		Light:    s.lights[v.location].Light(v.heading),
		Oncoming: env.NoVehicle,
		Left:     env.NoVehicle,
		Right:    env.NoVehicle,
	}

	for _, other := range s.vehicles() {
		if other == v || other.location != v.location {
			continue
		}

		// With several vehicles on one side, a reported oncoming left is
		// never overwritten. Neither is forward or left from the right,
		// or forward from the left.
		w := other.waypoint()
		switch other.heading {
		case v.heading.Reverse():
			if p.Oncoming != env.Left {
				p.Oncoming = w
			}
		case v.heading.TurnLeft():
			if p.Right != env.Forward && p.Right != env.Left {
				p.Right = w
			}
		case v.heading.TurnRight():
			if p.Left != env.Forward {
				p.Left = w
			}
		}
	}

	return p
}

// move executes action a for vehicle v if it is legal and returns the
// reward for doing so
func (s *Smartcab) move(v *vehicle, a env.Action) float64 {
	p := s.sense(v)
	waypoint := v.waypoint()

	heading := v.heading
	legal := true
	switch a {
	case env.Forward:
		legal = p.Light == env.Green

	case env.Left:
		legal = p.Light == env.Green &&
			(p.Oncoming == env.NoVehicle || p.Oncoming == env.Left)
		heading = heading.TurnLeft()

	case env.Right:
		legal = p.Light == env.Green || p.Left != env.Forward
		heading = heading.TurnRight()

	case env.Stay:
		return 0.0
	}

	if !legal {
		return -1.0
	}

	v.heading = heading
	v.location = s.wrap(env.Location{
		X: v.location.X + heading.DX,
		Y: v.location.Y + heading.DY,
	})

	if a == waypoint {
		return 2.0
	}
	return -0.5
}

// driveDummy moves dummy i along its intended waypoint if the traffic
// rules allow it, otherwise it waits
func (s *Smartcab) driveDummy(i int, d *vehicle) {
	p := s.sense(d)
	intended := s.intended[i]

	var ok bool
	switch intended {
	case env.Right:
		ok = !(p.Light == env.Red && p.Left == env.Forward)
	case env.Forward:
		ok = p.Light == env.Green
	case env.Left:
		ok = p.Light == env.Green &&
			!(p.Oncoming == env.Forward || p.Oncoming == env.Right)
	}

	if !ok {
		return
	}
	s.move(d, intended)
	s.intended[i] = s.randomWaypoint()
}

// wrap wraps l around the edges of the grid
func (s *Smartcab) wrap(l env.Location) env.Location {
	return env.Location{
		X: mod(l.X-s.x0, s.x1-s.x0+1) + s.x0,
		Y: mod(l.Y-s.y0, s.y1-s.y0+1) + s.y0,
	}
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func (s *Smartcab) vehicles() []*vehicle {
	return append([]*vehicle{s.primary}, s.dummies...)
}

func (s *Smartcab) randomLocation() env.Location {
	return env.Location{
		X: s.x0 + s.rng.Intn(s.x1-s.x0+1),
		Y: s.y0 + s.rng.Intn(s.y1-s.y0+1),
	}
}

func (s *Smartcab) randomHeading() Heading {
	return Headings[s.rng.Intn(len(Headings))]
}

func (s *Smartcab) randomWaypoint() env.Action {
	return env.Actions[s.rng.Intn(3)]
}

func (s *Smartcab) String() string {
	str := "Smartcab | At: %v  |  Heading: %v  |  Destination: %v  |  " +
		"Deadline: %d  |  Bounds: (%d, %d)"

	return fmt.Sprintf(str, s.primary.location, s.primary.heading,
		s.primary.destination, s.primary.deadline, s.x1, s.y1)
}
