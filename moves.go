package cubeturn

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	next, err := cubeturn.New().Apply(cubeturn.R, cubeturn.U, cubeturn.RPrime, cubeturn.UPrime)
var (
	// Front face moves
	F      = Move{Face: Front, Direction: Clockwise}     // Front clockwise
	FPrime = Move{Face: Front, Direction: Anticlockwise} // Front anticlockwise

	// Right face moves
	R      = Move{Face: Right, Direction: Clockwise}     // Right clockwise
	RPrime = Move{Face: Right, Direction: Anticlockwise} // Right anticlockwise

	// Up face moves
	U      = Move{Face: Up, Direction: Clockwise}     // Up clockwise
	UPrime = Move{Face: Up, Direction: Anticlockwise} // Up anticlockwise

	// Back face moves
	B      = Move{Face: Back, Direction: Clockwise}     // Back clockwise
	BPrime = Move{Face: Back, Direction: Anticlockwise} // Back anticlockwise

	// Left face moves
	L      = Move{Face: Left, Direction: Clockwise}     // Left clockwise
	LPrime = Move{Face: Left, Direction: Anticlockwise} // Left anticlockwise

	// Down face moves
	D      = Move{Face: Down, Direction: Clockwise}     // Down clockwise
	DPrime = Move{Face: Down, Direction: Anticlockwise} // Down anticlockwise
)

// ChallengeSequence turns every face once, alternating direction:
// F R' U B' L D'.
var ChallengeSequence = []Move{F, RPrime, U, BPrime, L, DPrime}

// SexyMove is R U R' U'. Six repetitions return any cube to its start.
var SexyMove = []Move{R, U, RPrime, UPrime}
