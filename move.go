package cubeturn

import (
	"fmt"
	"strings"
)

// Move is a single quarter turn of one face.
type Move struct {
	Face      Face      // Which face to turn
	Direction Direction // Clockwise or Anticlockwise
}

// Notation returns the standard cube notation string for this move.
// Examples: F, F', R, R'
func (m Move) Notation() string {
	suffix := ""
	if m.Direction == Anticlockwise {
		suffix = "'"
	}
	return m.Face.Notation() + suffix
}

// Inverse returns the move that undoes m.
// F becomes F', F' becomes F.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Direction: m.Direction.Inverse()}
}

// Valid reports whether both the face and the direction are recognized.
func (m Move) Valid() bool {
	return m.Face.Valid() && m.Direction.Valid()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move.
// Examples: F, F', r, u`
// Half turns (F2) are not quarter turns and are rejected.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	// Extract face
	var face Face
	switch s[0] {
	case 'F', 'f':
		face = Front
	case 'R', 'r':
		face = Right
	case 'U', 'u':
		face = Up
	case 'B', 'b':
		face = Back
	case 'L', 'l':
		face = Left
	case 'D', 'd':
		face = Down
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	// Extract direction
	dir := Clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			dir = Anticlockwise
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Face: face, Direction: dir}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "F R' U B' L D'"
// The first invalid token fails the whole parse.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves: reversed, with each
// move inverted.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
