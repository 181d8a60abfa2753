package cubeturn

import "errors"

// Sentinel errors for the cubeturn package.
var (
	// Contract violations
	ErrInvalidDirection = errors.New("cubeturn: invalid rotation direction")
	ErrInvalidFace      = errors.New("cubeturn: invalid face")
	ErrIndexOutOfRange  = errors.New("cubeturn: cell index out of range")
	ErrInvalidColor     = errors.New("cubeturn: invalid color")

	// Parsing errors
	ErrInvalidNotation = errors.New("cubeturn: invalid move notation")
)
