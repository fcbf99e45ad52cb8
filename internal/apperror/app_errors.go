package apperror

import "errors"

var (
	ErrGameAlreadyOver      = errors.New("game is already over")
	ErrCoordinateOutOfRange = errors.New("coordinate is out of range")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrMalformedInput       = errors.New("input is not two integers")
)

// IsRetryable reports whether the player should simply be asked again.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrCoordinateOutOfRange) ||
		errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrMalformedInput)
}
