package world

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is wrapped by every grid construction error.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid construction errors
var (
	ErrEmptyGrid    = errors.New("grid has no cells")
	ErrRaggedRows   = errors.New("rows have unequal length")
	ErrUnknownCell  = errors.New("unknown cell character")
	ErrNoRobots     = errors.New("grid has no robot start")
	ErrDuplicateKey = errors.New("key letter appears more than once")
	ErrOrphanDoor   = errors.New("door has no matching key")
)

// invalidf builds an error matching both ErrInvalidGrid and cause.
func invalidf(cause error, format string, a ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidGrid, cause, fmt.Sprintf(format, a...))
}
