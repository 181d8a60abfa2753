package cubeturn

// Tracker sequences rotations on a single cube and keeps the move history
// so they can be undone. A Tracker is not safe for concurrent use; callers
// sharing one must serialize access.
type Tracker struct {
	start Cube
	cube  Cube
	moves []Move
}

// NewTracker creates a tracker starting from a new cube.
func NewTracker() *Tracker {
	return NewTrackerFrom(New())
}

// NewTrackerFrom creates a tracker starting from c.
func NewTrackerFrom(c Cube) *Tracker {
	return &Tracker{
		start: c,
		cube:  c,
		moves: make([]Move, 0),
	}
}

// Apply performs m. An invalid move leaves the tracker unchanged.
func (t *Tracker) Apply(m Move) error {
	next, err := t.cube.Rotate(m.Face, m.Direction)
	if err != nil {
		return err
	}
	t.cube = next
	t.moves = append(t.moves, m)
	return nil
}

// ApplyMoves performs moves in order. If any move is invalid none of them
// are applied.
func (t *Tracker) ApplyMoves(moves []Move) error {
	next, err := t.cube.Apply(moves...)
	if err != nil {
		return err
	}
	t.cube = next
	t.moves = append(t.moves, moves...)
	return nil
}

// Undo reverts the most recent move and returns it.
// It returns false when there is nothing to undo.
func (t *Tracker) Undo() (Move, bool) {
	if len(t.moves) == 0 {
		return Move{}, false
	}
	last := t.moves[len(t.moves)-1]
	next, err := t.cube.Rotate(last.Face, last.Direction.Inverse())
	if err != nil {
		// Only valid moves are ever recorded.
		return Move{}, false
	}
	t.cube = next
	t.moves = t.moves[:len(t.moves)-1]
	return last, true
}

// Reset returns the tracker to its starting cube and clears the history.
func (t *Tracker) Reset() {
	t.cube = t.start
	t.moves = t.moves[:0]
}

// Cube returns the current cube state.
func (t *Tracker) Cube() Cube {
	return t.cube
}

// Moves returns a copy of the moves applied since the last reset.
func (t *Tracker) Moves() []Move {
	out := make([]Move, len(t.moves))
	copy(out, t.moves)
	return out
}

// IsSolved returns true if every face of the current cube is one color.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}
