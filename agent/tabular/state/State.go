// Package state implements the discrete state abstraction used by
// tabular driving agents.
//
// A state Key summarises four categorical features of an intersection:
// the light colour, whether oncoming traffic conflicts with the agent's
// path, whether traffic from the left crosses the agent's path, and the
// agent's desired heading. There are 2 × 2 × 2 × 3 = 24 distinct keys.
//
// Keys must only be constructed through Encode or FromPercept so that
// every key is in range and distinct feature combinations never alias.
package state

import (
	"fmt"

	env "github.com/samuelfneumann/smartcab/environment"
)

// NumStates is the number of distinct state keys
const NumStates = 24

// Headings lists the desired headings a Key can hold, in index order
var Headings = [3]env.Action{env.Forward, env.Left, env.Right}

// Key is a discrete, comparable state identifier
type Key struct {
	Light            env.Light
	OncomingConflict bool
	LeftCross        bool
	Heading          env.Action
}

// Encode returns the Key for the given features. Encode is pure and
// total over valid inputs, and returns an error if the light or
// heading are out of range.
func Encode(light env.Light, oncoming, left bool,
	heading env.Action) (Key, error) {
	if !light.Valid() {
		return Key{}, fmt.Errorf("encode: invalid light %v", light)
	}
	if headingIndex(heading) < 0 {
		return Key{}, fmt.Errorf("encode: invalid heading %v", heading)
	}

	return Key{
		Light:            light,
		OncomingConflict: oncoming,
		LeftCross:        left,
		Heading:          heading,
	}, nil
}

// Index enumerates the Key into [0, NumStates)
func (k Key) Index() int {
	return int(k.Light)*12 + bit(k.OncomingConflict)*6 +
		bit(k.LeftCross)*3 + headingIndex(k.Heading)
}

// FromIndex returns the Key with the given index
func FromIndex(i int) (Key, error) {
	if i < 0 || i >= NumStates {
		return Key{}, fmt.Errorf("fromIndex: index %d out of range [0, %d)",
			i, NumStates)
	}
	return Encode(env.Light(i/12), (i/6)%2 == 1, (i/3)%2 == 1, Headings[i%3])
}

// String renders the Key as four digits: light, oncoming conflict,
// left cross traffic and heading, e.g. "0102"
func (k Key) String() string {
	return fmt.Sprintf("%d%d%d%d", int(k.Light), bit(k.OncomingConflict),
		bit(k.LeftCross), headingIndex(k.Heading))
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

func headingIndex(h env.Action) int {
	for i, heading := range Headings {
		if h == heading {
			return i
		}
	}
	return -1
}
