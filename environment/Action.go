package environment

import "fmt"

// Action is a manoeuvre a vehicle can take at an intersection. The
// integer value of each valid Action is its column in a value table.
type Action int

const (
	Forward Action = iota
	Left
	Right
	Stay

	// NoVehicle marks an empty traffic slot in a Percept. It is never a
	// valid Action.
	NoVehicle Action = -1
)

// NumActions is the number of valid actions
const NumActions = 4

// Actions lists the valid actions in value-table order
var Actions = [NumActions]Action{Forward, Left, Right, Stay}

// Valid returns whether a is one of the four valid actions
func (a Action) Valid() bool {
	return a >= Forward && a <= Stay
}

func (a Action) String() string {
	switch a {
	case Forward:
		return "forward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Stay:
		return "stay"
	case NoVehicle:
		return "none"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}
