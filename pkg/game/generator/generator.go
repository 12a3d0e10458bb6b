// Package generator builds random maze layouts for the solver.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrBadOptions means the requested dimensions or counts are impossible.
	ErrBadOptions = errors.New("invalid generator options")
	// ErrTooSmall means the carved area has fewer cells than robots, keys
	// and doors to place.
	ErrTooSmall = errors.New("not enough open cells to place every item")
)

// Options controls the size and contents of a generated layout.
type Options struct {
	Width  int
	Height int
	Robots int
	Keys   int
	Doors  int
}

// DefaultOptions is a small single-robot maze with a few doors.
var DefaultOptions = Options{Width: 21, Height: 11, Robots: 1, Keys: 5, Doors: 2}

// Validate reports whether o can describe a bordered grid.
func (o Options) Validate() error {
	switch {
	case o.Width < 3 || o.Height < 3:
		return fmt.Errorf("%w: grid must be at least 3x3, got %dx%d", ErrBadOptions, o.Width, o.Height)
	case o.Robots < 1:
		return fmt.Errorf("%w: need at least one robot", ErrBadOptions)
	case o.Keys < 0 || o.Keys > 26:
		return fmt.Errorf("%w: keys must be between 0 and 26, got %d", ErrBadOptions, o.Keys)
	case o.Doors < 0 || o.Doors > o.Keys:
		return fmt.Errorf("%w: doors must be between 0 and keys (%d), got %d", ErrBadOptions, o.Keys, o.Doors)
	}
	return nil
}

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(rng *rand.Rand, opts Options) ([]string, error)
	Name() string
}

// Available generators
var (
	LineWalker = &LineWalkerGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = LineWalker

func errTooSmall(open, need int) error {
	return fmt.Errorf("%w: %d open cells for %d items", ErrTooSmall, open, need)
}
