package cubeturn

import (
	"fmt"
	"strings"
)

// Color represents a sticker color.
type Color byte

const (
	Green  Color = 0 // Front face when solved
	Red    Color = 1 // Right face when solved
	White  Color = 2 // Up face when solved
	Blue   Color = 3 // Back face when solved
	Orange Color = 4 // Left face when solved
	Yellow Color = 5 // Down face when solved
)

func (c Color) String() string {
	switch c {
	case Green:
		return "Green"
	case Red:
		return "Red"
	case White:
		return "White"
	case Blue:
		return "Blue"
	case Orange:
		return "Orange"
	case Yellow:
		return "Yellow"
	default:
		return fmt.Sprintf("Color(%d)", byte(c))
	}
}

// Letter returns the single-letter form used in the cube net.
func (c Color) Letter() string {
	switch c {
	case Green:
		return "G"
	case Red:
		return "R"
	case White:
		return "W"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Valid reports whether c is one of the six sticker colors.
func (c Color) Valid() bool {
	return c <= Yellow
}

// Face identifies one of the six sides of the cube.
type Face int

const (
	Front Face = 0
	Right Face = 1
	Up    Face = 2
	Back  Face = 3
	Left  Face = 4
	Down  Face = 5
)

// numFaces is the number of faces on the cube.
const numFaces = 6

// AllFaces returns the six faces in declaration order.
func AllFaces() []Face {
	return []Face{Front, Right, Up, Back, Left, Down}
}

func (f Face) String() string {
	switch f {
	case Front:
		return "Front"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Back:
		return "Back"
	case Left:
		return "Left"
	case Down:
		return "Down"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// Notation returns the single-letter move notation for the face.
func (f Face) Notation() string {
	switch f {
	case Front:
		return "F"
	case Right:
		return "R"
	case Up:
		return "U"
	case Back:
		return "B"
	case Left:
		return "L"
	case Down:
		return "D"
	default:
		return "?"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= Front && f <= Down
}

// DefaultColor returns the color every cell of f carries on a new cube.
// The mapping is a bijection: no two faces share a default color.
func (f Face) DefaultColor() Color {
	switch f {
	case Front:
		return Green
	case Right:
		return Red
	case Up:
		return White
	case Back:
		return Blue
	case Left:
		return Orange
	default:
		return Yellow
	}
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case Front:
		return Back
	case Back:
		return Front
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

// ParseFace parses a face name ("Front") or its notation letter ("F").
// Matching is case-insensitive.
func ParseFace(s string) (Face, error) {
	s = strings.TrimSpace(s)
	for _, f := range AllFaces() {
		if strings.EqualFold(s, f.String()) || strings.EqualFold(s, f.Notation()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFace, s)
}

// Direction is the sense of a quarter turn, as seen looking straight at the
// turned face from outside the cube.
type Direction int

const (
	Clockwise     Direction = 1
	Anticlockwise Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "Clockwise"
	case Anticlockwise:
		return "Anticlockwise"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is Clockwise or Anticlockwise.
func (d Direction) Valid() bool {
	return d == Clockwise || d == Anticlockwise
}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	return -d
}
