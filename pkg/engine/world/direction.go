package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the offset of one step in this direction
func (d Direction) Delta() Position {
	switch d {
	case North:
		return Position{0, -1}
	case East:
		return Position{1, 0}
	case South:
		return Position{0, 1}
	case West:
		return Position{-1, 0}
	default:
		return Position{}
	}
}

// Orientation is the axis a corridor runs along
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Forward returns the direction a strip of this orientation grows in
func (o Orientation) Forward() Direction {
	if o == Vertical {
		return South
	}
	return East
}

// Perpendicular returns the other axis
func (o Orientation) Perpendicular() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}
