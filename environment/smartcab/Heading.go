package smartcab

import "fmt"

// Heading is the direction of travel of a vehicle. Y grows southward.
type Heading struct {
	DX, DY int
}

var (
	East  = Heading{1, 0}
	North = Heading{0, -1}
	West  = Heading{-1, 0}
	South = Heading{0, 1}
)

// Headings lists the valid headings
var Headings = []Heading{East, North, West, South}

// Reverse returns the opposite heading
func (h Heading) Reverse() Heading {
	return Heading{-h.DX, -h.DY}
}

// TurnLeft returns the heading after a left turn
func (h Heading) TurnLeft() Heading {
	return Heading{h.DY, -h.DX}
}

// TurnRight returns the heading after a right turn
func (h Heading) TurnRight() Heading {
	return Heading{-h.DY, h.DX}
}

func (h Heading) String() string {
	switch h {
	case East:
		return "East"
	case North:
		return "North"
	case West:
		return "West"
	case South:
		return "South"
	}
	return fmt.Sprintf("Heading(%d, %d)", h.DX, h.DY)
}
