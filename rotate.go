package cubeturn

import "fmt"

// CellUpdate is a single sticker write produced by a rotation.
type CellUpdate struct {
	Face  Face
	Row   int
	Col   int
	Color Color
}

// RotateGrid returns g turned a quarter turn in dir. The center cell never
// moves.
//
//	Clockwise:     out[r][c] = in[2-c][r]
//	Anticlockwise: out[r][c] = in[c][2-r]
func RotateGrid(g FaceGrid, dir Direction) (FaceGrid, error) {
	var out FaceGrid
	switch dir {
	case Clockwise:
		for r := 0; r < GridSize; r++ {
			for c := 0; c < GridSize; c++ {
				out[r][c] = g[GridSize-1-c][r]
			}
		}
	case Anticlockwise:
		for r := 0; r < GridSize; r++ {
			for c := 0; c < GridSize; c++ {
				out[r][c] = g[c][GridSize-1-r]
			}
		}
	default:
		return FaceGrid{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	return out, nil
}

// RotateFaceInPlace returns the grid of face after a quarter turn, computed
// from snapshot. Only the turned face is considered; the neighbors are
// handled by UpdateAdjacentFaces.
func RotateFaceInPlace(snapshot Cube, face Face, dir Direction) (FaceGrid, error) {
	g, err := snapshot.Grid(face)
	if err != nil {
		return FaceGrid{}, err
	}
	return RotateGrid(g, dir)
}

// UpdateAdjacentFaces returns the twelve border writes a quarter turn of
// face makes on its four neighbors. Every value is read from snapshot.
func UpdateAdjacentFaces(snapshot Cube, face Face, dir Direction) ([]CellUpdate, error) {
	rule, err := AdjacencyRule(face, dir)
	if err != nil {
		return nil, err
	}

	updates := make([]CellUpdate, 0, len(rule)*GridSize)
	for _, t := range rule {
		for i := 0; i < GridSize; i++ {
			src := t.SourceCells[i]
			dst := t.TargetCells[i]
			updates = append(updates, CellUpdate{
				Face:  t.Target,
				Row:   dst.Row,
				Col:   dst.Col,
				Color: snapshot.faces[t.Source][src.Row][src.Col],
			})
		}
	}
	return updates, nil
}

// Rotate turns face a quarter turn in dir and returns the resulting cube.
// The input cube is never modified; on error c is returned unchanged.
func Rotate(c Cube, face Face, dir Direction) (Cube, error) {
	snapshot := c.Snapshot()

	turned, err := RotateFaceInPlace(snapshot, face, dir)
	if err != nil {
		return c, err
	}
	updates, err := UpdateAdjacentFaces(snapshot, face, dir)
	if err != nil {
		return c, err
	}

	next := snapshot
	next.faces[face] = turned
	for _, u := range updates {
		next.faces[u.Face][u.Row][u.Col] = u.Color
	}
	return next, nil
}

// Rotate is the method form of Rotate.
func (c Cube) Rotate(face Face, dir Direction) (Cube, error) {
	return Rotate(c, face, dir)
}

// Apply performs moves in order and returns the final cube. If any move is
// invalid the whole sequence is rejected and c is returned unchanged.
func (c Cube) Apply(moves ...Move) (Cube, error) {
	next := c
	for i, m := range moves {
		var err error
		next, err = Rotate(next, m.Face, m.Direction)
		if err != nil {
			return c, fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
	}
	return next, nil
}
