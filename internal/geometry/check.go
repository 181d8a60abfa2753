package geometry

import (
	"fmt"

	"github.com/SeamusWaldron/cubeturn"
)

// Mismatch records a sticker that cubeturn.Rotate moves somewhere other
// than the coordinate model does.
type Mismatch struct {
	Move    cubeturn.Move
	Sticker Sticker
	Want    Sticker
	Got     []Sticker
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s should move to %s, found at %v", m.Move, m.Sticker, m.Want, m.Got)
}

// Check traces every sticker through every quarter turn of cubeturn.Rotate
// and compares the result with the coordinate model. A nil result means
// the rotation tables agree with the geometry.
func Check() ([]Mismatch, error) {
	var mismatches []Mismatch
	for _, face := range cubeturn.AllFaces() {
		for _, dir := range []cubeturn.Direction{cubeturn.Clockwise, cubeturn.Anticlockwise} {
			move := cubeturn.Move{Face: face, Direction: dir}
			found, err := checkMove(move)
			if err != nil {
				return nil, err
			}
			mismatches = append(mismatches, found...)
		}
	}
	return mismatches, nil
}

func checkMove(move cubeturn.Move) ([]Mismatch, error) {
	fwd, err := Forward(move.Face, move.Direction)
	if err != nil {
		return nil, err
	}

	var mismatches []Mismatch
	for _, s := range AllStickers() {
		marked, err := markedCube(s)
		if err != nil {
			return nil, err
		}
		turned, err := marked.Rotate(move.Face, move.Direction)
		if err != nil {
			return nil, err
		}

		want, moved := fwd[s]
		if !moved {
			want = s
		}
		got := findMarked(turned)
		if len(got) != 1 || got[0] != want {
			mismatches = append(mismatches, Mismatch{Move: move, Sticker: s, Want: want, Got: got})
		}
	}
	return mismatches, nil
}

// markedCube returns an all-Green cube with a single Red sticker at s.
func markedCube(s Sticker) (cubeturn.Cube, error) {
	grids := make(map[cubeturn.Face]cubeturn.FaceGrid, 6)
	for _, f := range cubeturn.AllFaces() {
		grids[f] = cubeturn.UniformGrid(cubeturn.Green)
	}
	g := grids[s.Face]
	g[s.Row][s.Col] = cubeturn.Red
	grids[s.Face] = g
	return cubeturn.FromGrids(grids)
}

func findMarked(c cubeturn.Cube) []Sticker {
	var out []Sticker
	for _, s := range AllStickers() {
		if color, _ := c.Cell(s.Face, s.Row, s.Col); color == cubeturn.Red {
			out = append(out, s)
		}
	}
	return out
}
