package smartcab

import (
	"golang.org/x/exp/rand"

	env "github.com/samuelfneumann/smartcab/environment"
)

// Periods that a traffic light can hold each phase for
var periods = []int{3, 4, 5}

// TrafficLight is the light at a single intersection. When northSouth
// is true, traffic travelling north or south sees green and traffic
// travelling east or west sees red.
type TrafficLight struct {
	northSouth  bool
	period      int
	lastUpdated int
}

func newTrafficLight(rng *rand.Rand) *TrafficLight {
	return &TrafficLight{
		northSouth: rng.Intn(2) == 0,
		period:     periods[rng.Intn(len(periods))],
	}
}

// update switches the phase of the light if it has been held for at
// least its period
func (l *TrafficLight) update(t int) {
	if t-l.lastUpdated >= l.period {
		l.northSouth = !l.northSouth
		l.lastUpdated = t
	}
}

func (l *TrafficLight) reset() {
	l.lastUpdated = 0
}

// Light returns the colour seen by a vehicle travelling with heading h
func (l *TrafficLight) Light(h Heading) env.Light {
	if (l.northSouth && h.DY != 0) || (!l.northSouth && h.DX != 0) {
		return env.Green
	}
	return env.Red
}
