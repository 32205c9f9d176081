package suggest

import "errors"

var (
	// ErrInvalidSeedData is returned by New for malformed historical data.
	ErrInvalidSeedData = errors.New("invalid seed data")
	// ErrInvalidCharacter is returned by Feed for input outside a-z, space and the terminator.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrInvalidOption is returned by New when an Option is out of range.
	ErrInvalidOption = errors.New("invalid option")
)
