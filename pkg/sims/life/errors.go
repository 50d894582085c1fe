package life

import "errors"

var (
	// ErrInvalidDimension indicates a grid was requested with a non-positive width or height.
	ErrInvalidDimension = errors.New("life: grid width and height must be positive")
	// ErrIndexOutOfBounds indicates a cell coordinate outside [0,W)×[0,H).
	ErrIndexOutOfBounds = errors.New("life: cell coordinate out of bounds")
)
