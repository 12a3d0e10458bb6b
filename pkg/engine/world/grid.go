package world

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Grid is the immutable maze: bounds, walls, doors and the key each door
// waits for. A single Grid is shared by every field configuration derived
// from it.
type Grid struct {
	rows   []string
	width  int
	height int

	walls    mapset.Set[Point]
	doors    mapset.Set[Point]
	doorKeys map[Point]Point
	keys     map[Point]byte
	robots   []Point
}

// NewGrid classifies every cell of rows and pairs each door with its key.
// Rows must be rectangular and contain at least one robot start.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, invalidf(ErrEmptyGrid, "%d rows", len(rows))
	}

	g := &Grid{
		rows:     append([]string(nil), rows...),
		width:    len(rows[0]),
		height:   len(rows),
		walls:    mapset.New[Point](),
		doors:    mapset.New[Point](),
		doorKeys: make(map[Point]Point),
		keys:     make(map[Point]byte),
	}

	keyAt := make(map[byte]Point)
	doorAt := make(map[Point]byte)

	for y, row := range rows {
		if len(row) != g.width {
			return nil, invalidf(ErrRaggedRows, "row %d has width %d, want %d", y, len(row), g.width)
		}
		for x := 0; x < len(row); x++ {
			p := Point{X: x, Y: y}
			kind, err := Classify(row[x])
			if err != nil {
				return nil, fmt.Errorf("%w: %w at %s", ErrInvalidGrid, err, p)
			}
			switch kind {
			case Wall:
				g.walls.Put(p)
			case Start:
				g.robots = append(g.robots, p)
			case Key:
				if prev, ok := keyAt[row[x]]; ok {
					return nil, invalidf(ErrDuplicateKey, "%q at %s and %s", row[x], prev, p)
				}
				keyAt[row[x]] = p
				g.keys[p] = row[x]
			case Door:
				g.doors.Put(p)
				doorAt[p] = row[x]
			}
		}
	}

	if len(g.robots) == 0 {
		return nil, invalidf(ErrNoRobots, "%dx%d grid", g.width, g.height)
	}

	for _, p := range g.Doors() {
		letter := doorAt[p]
		key, ok := keyAt[KeyLetter(letter)]
		if !ok {
			return nil, invalidf(ErrOrphanDoor, "door %q at %s", letter, p)
		}
		g.doorKeys[p] = key
	}

	SortPoints(g.robots)
	return g, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if p lies anywhere on the grid, border included
func (g *Grid) IsValidPosition(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// InBounds checks if p lies strictly inside the border row and column.
// Border cells are never traversable, whatever their character.
func (g *Grid) InBounds(p Point) bool {
	return p.X > 0 && p.X < g.width-1 && p.Y > 0 && p.Y < g.height-1
}

// IsOnPerimeter checks if p is on the edge of the grid
func (g *Grid) IsOnPerimeter(p Point) bool {
	return g.IsValidPosition(p) && !g.InBounds(p)
}

// IsWall reports whether p is a wall cell
func (g *Grid) IsWall(p Point) bool {
	return g.walls.Has(p)
}

// IsDoor reports whether p is a door cell
func (g *Grid) IsDoor(p Point) bool {
	return g.doors.Has(p)
}

// DoorKey returns the position of the key that opens the door at p.
func (g *Grid) DoorKey(p Point) (Point, bool) {
	key, ok := g.doorKeys[p]
	return key, ok
}

// LetterAt returns the layout character at p, or 0 when p is off the grid.
func (g *Grid) LetterAt(p Point) byte {
	if !g.IsValidPosition(p) {
		return 0
	}
	return g.rows[p.Y][p.X]
}

// KindAt returns the classification of the cell at p. Off-grid points are walls.
func (g *Grid) KindAt(p Point) Kind {
	if !g.IsValidPosition(p) {
		return Wall
	}
	kind, err := Classify(g.rows[p.Y][p.X])
	if err != nil {
		return Wall
	}
	return kind
}

// Keys returns the initial key positions, sorted.
func (g *Grid) Keys() []Point {
	keys := make([]Point, 0, len(g.keys))
	for p := range g.keys {
		keys = append(keys, p)
	}
	return SortPoints(keys)
}

// KeyCount returns the number of keys in the maze
func (g *Grid) KeyCount() int {
	return len(g.keys)
}

// Robots returns the initial robot positions, sorted.
func (g *Grid) Robots() []Point {
	return append([]Point(nil), g.robots...)
}

// Doors returns the door positions, sorted.
func (g *Grid) Doors() []Point {
	doors := make([]Point, 0, g.doors.Size())
	g.doors.Each(func(p Point) {
		doors = append(doors, p)
	})
	return SortPoints(doors)
}

// KeyLetters returns the key letters in alphabetical order.
func (g *Grid) KeyLetters() []byte {
	letters := make([]byte, 0, len(g.keys))
	for _, letter := range g.keys {
		letters = append(letters, letter)
	}
	slices.Sort(letters)
	return letters
}

// Rows returns a copy of the layout rows.
func (g *Grid) Rows() []string {
	return append([]string(nil), g.rows...)
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(p Point, kind Kind, letter byte)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{X: x, Y: y}
			fn(p, g.KindAt(p), g.rows[y][x])
		}
	}
}
