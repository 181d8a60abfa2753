package cubeturn

import (
	"fmt"
	"strings"
)

// GridSize is the number of rows and columns on a face.
const GridSize = 3

// FaceGrid is the 3x3 sticker grid of one face, addressed [row][col].
// Row 0 is the top edge and column 0 the left edge of the face as drawn in
// the net:
//
//	      Up
//	Left Front Right Back
//	      Down
//
// Up is seen from above with Back along its top edge; Down is seen from
// below with Front along its top edge.
type FaceGrid [GridSize][GridSize]Color

// UniformGrid returns a grid with every cell set to c.
func UniformGrid(c Color) FaceGrid {
	var g FaceGrid
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			g[row][col] = c
		}
	}
	return g
}

// Cell returns the color at (row, col).
func (g FaceGrid) Cell(row, col int) (Color, error) {
	if err := checkIndex(row, col); err != nil {
		return 0, err
	}
	return g[row][col], nil
}

// Uniform reports whether every cell has the same color.
func (g FaceGrid) Uniform() bool {
	first := g[0][0]
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if g[row][col] != first {
				return false
			}
		}
	}
	return true
}

func (g FaceGrid) validate() error {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if !g[row][col].Valid() {
				return fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidColor, byte(g[row][col]), row, col)
			}
		}
	}
	return nil
}

func checkIndex(row, col int) error {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return fmt.Errorf("%w: (%d,%d)", ErrIndexOutOfRange, row, col)
	}
	return nil
}

// Cube is the state of a 3x3x3 cube: one grid per face.
//
// Cube has value semantics. Assigning or passing a Cube copies all 54
// stickers, and no method mutates its receiver, so a Cube obtained from
// Rotate can never be changed by a later rotation.
type Cube struct {
	faces [numFaces]FaceGrid
}

// New creates a cube with every face showing its default color.
func New() Cube {
	var c Cube
	for _, face := range AllFaces() {
		c.faces[face] = UniformGrid(face.DefaultColor())
	}
	return c
}

// FromGrids builds a cube from explicit face grids. All six faces must be
// present and every cell must hold a valid color.
func FromGrids(grids map[Face]FaceGrid) (Cube, error) {
	var c Cube
	for _, face := range AllFaces() {
		g, ok := grids[face]
		if !ok {
			return Cube{}, fmt.Errorf("%w: %s grid missing", ErrInvalidFace, face)
		}
		if err := g.validate(); err != nil {
			return Cube{}, fmt.Errorf("%s: %w", face, err)
		}
		c.faces[face] = g
	}
	for face := range grids {
		if !face.Valid() {
			return Cube{}, fmt.Errorf("%w: %d", ErrInvalidFace, int(face))
		}
	}
	return c, nil
}

// Cell returns the color at (row, col) on face.
func (c Cube) Cell(face Face, row, col int) (Color, error) {
	if !face.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFace, int(face))
	}
	return c.faces[face].Cell(row, col)
}

// Grid returns a copy of the grid for face.
func (c Cube) Grid(face Face) (FaceGrid, error) {
	if !face.Valid() {
		return FaceGrid{}, fmt.Errorf("%w: %d", ErrInvalidFace, int(face))
	}
	return c.faces[face], nil
}

// Snapshot returns an independent copy of all six grids.
func (c Cube) Snapshot() Cube {
	return c
}

// IsSolved reports whether every face is a single color.
func (c Cube) IsSolved() bool {
	for _, face := range AllFaces() {
		if !c.faces[face].Uniform() {
			return false
		}
	}
	return true
}

// IsDefault reports whether the cube is in its freshly constructed state.
func (c Cube) IsDefault() bool {
	return c == New()
}

// String returns the cube as a net of color letters.
func (c Cube) String() string {
	var b strings.Builder

	// Up face (indented)
	for row := 0; row < GridSize; row++ {
		b.WriteString("      ")
		for col := 0; col < GridSize; col++ {
			b.WriteString(c.faces[Up][row][col].Letter() + " ")
		}
		b.WriteString("\n")
	}

	// Left, Front, Right, Back (side by side)
	for row := 0; row < GridSize; row++ {
		for _, face := range []Face{Left, Front, Right, Back} {
			for col := 0; col < GridSize; col++ {
				b.WriteString(c.faces[face][row][col].Letter() + " ")
			}
		}
		b.WriteString("\n")
	}

	// Down face (indented)
	for row := 0; row < GridSize; row++ {
		b.WriteString("      ")
		for col := 0; col < GridSize; col++ {
			b.WriteString(c.faces[Down][row][col].Letter() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
