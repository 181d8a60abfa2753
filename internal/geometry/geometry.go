// Package geometry is a 3D coordinate model of the cube, independent of the
// rotation tables in package cubeturn.
//
// Every sticker is a (position, normal) pair of integer vectors: positions
// lie in {-1,0,1}^3 with x pointing Right, y pointing Up and z pointing
// Front, and the normal is the unit vector of the face it sits on. A
// quarter turn rotates every sticker of a layer about the face normal.
package geometry

import (
	"fmt"

	"github.com/SeamusWaldron/cubeturn"
)

// Vec is an integer 3-vector.
type Vec [3]int

func (a Vec) dot(b Vec) int {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec) cross(b Vec) Vec {
	return Vec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Sticker addresses one cell of one face.
type Sticker struct {
	Face cubeturn.Face
	Row  int
	Col  int
}

func (s Sticker) String() string {
	return fmt.Sprintf("%s(%d,%d)", s.Face, s.Row, s.Col)
}

type placement struct {
	pos    Vec
	normal Vec
}

// index maps every placement back to its sticker.
var index = buildIndex()

func buildIndex() map[placement]Sticker {
	m := make(map[placement]Sticker, 54)
	for _, s := range AllStickers() {
		pos, normal := Place(s)
		m[placement{pos, normal}] = s
	}
	return m
}

// AllStickers returns the 54 stickers face by face, row-major.
func AllStickers() []Sticker {
	out := make([]Sticker, 0, 54)
	for _, f := range cubeturn.AllFaces() {
		for r := 0; r < cubeturn.GridSize; r++ {
			for c := 0; c < cubeturn.GridSize; c++ {
				out = append(out, Sticker{Face: f, Row: r, Col: c})
			}
		}
	}
	return out
}

// Normal returns the outward unit normal of f.
func Normal(f cubeturn.Face) Vec {
	switch f {
	case cubeturn.Front:
		return Vec{0, 0, 1}
	case cubeturn.Back:
		return Vec{0, 0, -1}
	case cubeturn.Right:
		return Vec{1, 0, 0}
	case cubeturn.Left:
		return Vec{-1, 0, 0}
	case cubeturn.Up:
		return Vec{0, 1, 0}
	default:
		return Vec{0, -1, 0}
	}
}

// Place returns the position and normal of s. The grid orientation is the
// one cubeturn.FaceGrid documents.
func Place(s Sticker) (pos, normal Vec) {
	r, c := s.Row, s.Col
	switch s.Face {
	case cubeturn.Front:
		pos = Vec{c - 1, 1 - r, 1}
	case cubeturn.Back:
		pos = Vec{1 - c, 1 - r, -1}
	case cubeturn.Right:
		pos = Vec{1, 1 - r, 1 - c}
	case cubeturn.Left:
		pos = Vec{-1, 1 - r, c - 1}
	case cubeturn.Up:
		pos = Vec{c - 1, 1, r - 1}
	default:
		pos = Vec{c - 1, -1, 1 - r}
	}
	return pos, Normal(s.Face)
}

// rotate turns v a quarter turn about axis n. Clockwise, seen from the tip
// of n, is a rotation by -90 degrees.
func rotate(v, n Vec, dir cubeturn.Direction) Vec {
	s := -int(dir)
	x := n.cross(v)
	d := n.dot(v)
	return Vec{s*x[0] + n[0]*d, s*x[1] + n[1]*d, s*x[2] + n[2]*d}
}

// Forward returns where each sticker of the turned layer ends up.
func Forward(face cubeturn.Face, dir cubeturn.Direction) (map[Sticker]Sticker, error) {
	if !face.Valid() {
		return nil, fmt.Errorf("%w: %d", cubeturn.ErrInvalidFace, int(face))
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %d", cubeturn.ErrInvalidDirection, int(dir))
	}

	n := Normal(face)
	out := make(map[Sticker]Sticker, 21)
	for p, s := range index {
		if p.pos.dot(n) != 1 {
			continue
		}
		dst, ok := index[placement{rotate(p.pos, n, dir), rotate(p.normal, n, dir)}]
		if !ok {
			return nil, fmt.Errorf("geometry: %s has no image under %s %s", s, face, dir)
		}
		out[s] = dst
	}
	return out, nil
}

// Turn applies a quarter turn to c using the coordinate model.
func Turn(c cubeturn.Cube, face cubeturn.Face, dir cubeturn.Direction) (cubeturn.Cube, error) {
	fwd, err := Forward(face, dir)
	if err != nil {
		return c, err
	}

	grids := make(map[cubeturn.Face]cubeturn.FaceGrid, 6)
	for _, f := range cubeturn.AllFaces() {
		grids[f], _ = c.Grid(f)
	}
	for src, dst := range fwd {
		color, _ := c.Cell(src.Face, src.Row, src.Col)
		g := grids[dst.Face]
		g[dst.Row][dst.Col] = color
		grids[dst.Face] = g
	}
	return cubeturn.FromGrids(grids)
}
