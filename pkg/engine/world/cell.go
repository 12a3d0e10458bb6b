// Package world provides the static maze model: coordinates, cell
// classification and the immutable grid with its door-to-key pairing.
package world

import "fmt"

// Kind is the classification of a single maze cell.
type Kind int

// Kind constants
const (
	Empty Kind = iota
	Wall
	Start
	Key
	Door
)

// Layout characters
const (
	EmptyChar = '.'
	WallChar  = '#'
	StartChar = '@'
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Key:
		return "key"
	case Door:
		return "door"
	default:
		return "unknown"
	}
}

// Passable reports whether a robot may ever stand on a cell of this kind.
// Doors are passable only once unlocked, which the grid alone cannot tell.
func (k Kind) Passable() bool {
	return k == Empty || k == Start || k == Key
}

// Classify maps a layout character to its cell kind.
func Classify(ch byte) (Kind, error) {
	switch {
	case ch == EmptyChar:
		return Empty, nil
	case ch == WallChar:
		return Wall, nil
	case ch == StartChar:
		return Start, nil
	case 'a' <= ch && ch <= 'z':
		return Key, nil
	case 'A' <= ch && ch <= 'Z':
		return Door, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownCell, ch)
	}
}

// KeyLetter returns the key letter that opens the door letter ch.
func KeyLetter(ch byte) byte {
	return ch | 0x20
}
