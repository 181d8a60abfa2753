package cubeturn

import "fmt"

// Cell addresses one sticker position within a face grid.
type Cell struct {
	Row, Col int
}

// Edge is an ordered run of three border cells. Transfers pair the i-th
// cell of the source edge with the i-th cell of the target edge.
type Edge [GridSize]Cell

// Border edges of a face grid, plus their reversed orderings.
var (
	topRow       = Edge{{0, 0}, {0, 1}, {0, 2}}
	topRowRev    = Edge{{0, 2}, {0, 1}, {0, 0}}
	bottomRow    = Edge{{2, 0}, {2, 1}, {2, 2}}
	bottomRowRev = Edge{{2, 2}, {2, 1}, {2, 0}}
	leftCol      = Edge{{0, 0}, {1, 0}, {2, 0}}
	leftColRev   = Edge{{2, 0}, {1, 0}, {0, 0}}
	rightCol     = Edge{{0, 2}, {1, 2}, {2, 2}}
	rightColRev  = Edge{{2, 2}, {1, 2}, {0, 2}}
)

// Transfer moves three border stickers from one neighbor of the turned face
// to another: Target[TargetCells[i]] = Source[SourceCells[i]].
type Transfer struct {
	Target      Face
	TargetCells Edge
	Source      Face
	SourceCells Edge
}

type ruleKey struct {
	face Face
	dir  Direction
}

// adjacencyRules lists, for every quarter turn, how the border stickers of
// the four neighboring faces move. The anticlockwise rule of each face is
// the inverse cycle of its clockwise rule.
var adjacencyRules = map[ruleKey][4]Transfer{
	{Front, Clockwise}: {
		{Target: Up, TargetCells: bottomRow, Source: Left, SourceCells: rightColRev},
		{Target: Right, TargetCells: leftCol, Source: Up, SourceCells: bottomRow},
		{Target: Down, TargetCells: topRow, Source: Right, SourceCells: leftColRev},
		{Target: Left, TargetCells: rightCol, Source: Down, SourceCells: topRow},
	},
	{Front, Anticlockwise}: {
		{Target: Up, TargetCells: bottomRow, Source: Right, SourceCells: leftCol},
		{Target: Right, TargetCells: leftCol, Source: Down, SourceCells: topRowRev},
		{Target: Down, TargetCells: topRow, Source: Left, SourceCells: rightCol},
		{Target: Left, TargetCells: rightCol, Source: Up, SourceCells: bottomRowRev},
	},
	{Right, Clockwise}: {
		{Target: Up, TargetCells: rightCol, Source: Front, SourceCells: rightCol},
		{Target: Back, TargetCells: leftCol, Source: Up, SourceCells: rightColRev},
		{Target: Down, TargetCells: rightCol, Source: Back, SourceCells: leftColRev},
		{Target: Front, TargetCells: rightCol, Source: Down, SourceCells: rightCol},
	},
	{Right, Anticlockwise}: {
		{Target: Up, TargetCells: rightCol, Source: Back, SourceCells: leftColRev},
		{Target: Back, TargetCells: leftCol, Source: Down, SourceCells: rightColRev},
		{Target: Down, TargetCells: rightCol, Source: Front, SourceCells: rightCol},
		{Target: Front, TargetCells: rightCol, Source: Up, SourceCells: rightCol},
	},
	{Up, Clockwise}: {
		{Target: Front, TargetCells: topRow, Source: Right, SourceCells: topRow},
		{Target: Left, TargetCells: topRow, Source: Front, SourceCells: topRow},
		{Target: Back, TargetCells: topRow, Source: Left, SourceCells: topRow},
		{Target: Right, TargetCells: topRow, Source: Back, SourceCells: topRow},
	},
	{Up, Anticlockwise}: {
		{Target: Front, TargetCells: topRow, Source: Left, SourceCells: topRow},
		{Target: Right, TargetCells: topRow, Source: Front, SourceCells: topRow},
		{Target: Back, TargetCells: topRow, Source: Right, SourceCells: topRow},
		{Target: Left, TargetCells: topRow, Source: Back, SourceCells: topRow},
	},
	{Back, Clockwise}: {
		{Target: Up, TargetCells: topRow, Source: Right, SourceCells: rightCol},
		{Target: Left, TargetCells: leftCol, Source: Up, SourceCells: topRowRev},
		{Target: Down, TargetCells: bottomRow, Source: Left, SourceCells: leftCol},
		{Target: Right, TargetCells: rightCol, Source: Down, SourceCells: bottomRowRev},
	},
	{Back, Anticlockwise}: {
		{Target: Up, TargetCells: topRow, Source: Left, SourceCells: leftColRev},
		{Target: Right, TargetCells: rightCol, Source: Up, SourceCells: topRow},
		{Target: Down, TargetCells: bottomRow, Source: Right, SourceCells: rightColRev},
		{Target: Left, TargetCells: leftCol, Source: Down, SourceCells: bottomRow},
	},
	{Left, Clockwise}: {
		{Target: Up, TargetCells: leftCol, Source: Back, SourceCells: rightColRev},
		{Target: Front, TargetCells: leftCol, Source: Up, SourceCells: leftCol},
		{Target: Down, TargetCells: leftCol, Source: Front, SourceCells: leftCol},
		{Target: Back, TargetCells: rightCol, Source: Down, SourceCells: leftColRev},
	},
	{Left, Anticlockwise}: {
		{Target: Up, TargetCells: leftCol, Source: Front, SourceCells: leftCol},
		{Target: Front, TargetCells: leftCol, Source: Down, SourceCells: leftCol},
		{Target: Down, TargetCells: leftCol, Source: Back, SourceCells: rightColRev},
		{Target: Back, TargetCells: rightCol, Source: Up, SourceCells: leftColRev},
	},
	{Down, Clockwise}: {
		{Target: Front, TargetCells: bottomRow, Source: Left, SourceCells: bottomRow},
		{Target: Right, TargetCells: bottomRow, Source: Front, SourceCells: bottomRow},
		{Target: Back, TargetCells: bottomRow, Source: Right, SourceCells: bottomRow},
		{Target: Left, TargetCells: bottomRow, Source: Back, SourceCells: bottomRow},
	},
	{Down, Anticlockwise}: {
		{Target: Front, TargetCells: bottomRow, Source: Right, SourceCells: bottomRow},
		{Target: Right, TargetCells: bottomRow, Source: Back, SourceCells: bottomRow},
		{Target: Back, TargetCells: bottomRow, Source: Left, SourceCells: bottomRow},
		{Target: Left, TargetCells: bottomRow, Source: Front, SourceCells: bottomRow},
	},
}

// AdjacencyRule returns the four border transfers for a quarter turn of face.
func AdjacencyRule(face Face, dir Direction) ([4]Transfer, error) {
	if !dir.Valid() {
		return [4]Transfer{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	rule, ok := adjacencyRules[ruleKey{face, dir}]
	if !ok {
		return [4]Transfer{}, fmt.Errorf("%w: %d", ErrInvalidFace, int(face))
	}
	return rule, nil
}
