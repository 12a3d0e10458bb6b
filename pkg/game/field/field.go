// Package field holds the mutable search configuration: where each robot
// stands and which keys are still waiting to be collected.
package field

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"keymaze/pkg/engine/world"
)

// ErrPrecondition is wrapped by every CollectKey contract violation.
var ErrPrecondition = errors.New("collect key precondition violated")

// CollectKey contract violations
var (
	ErrNotRobot = errors.New("no robot at position")
	ErrNotKey   = errors.New("no remaining key at position")
)

// Field is one search configuration. The grid is shared by reference;
// the robot and key sets are owned by the field.
type Field struct {
	grid   *world.Grid
	robots mapset.Set[world.Point]
	keys   mapset.Set[world.Point]
}

// Signature is the order-independent identity of a field, used to
// deduplicate configurations during the search.
type Signature string

// New returns the initial configuration of g: every robot at its start
// and every key still in place.
func New(g *world.Grid) *Field {
	f := &Field{
		grid:   g,
		robots: mapset.New[world.Point](),
		keys:   mapset.New[world.Point](),
	}
	for _, p := range g.Robots() {
		f.robots.Put(p)
	}
	for _, p := range g.Keys() {
		f.keys.Put(p)
	}
	return f
}

// Grid returns the shared maze model
func (f *Field) Grid() *world.Grid {
	return f.grid
}

// HasRobot reports whether a robot currently stands on p
func (f *Field) HasRobot(p world.Point) bool {
	return f.robots.Has(p)
}

// HasKey reports whether p still holds an uncollected key
func (f *Field) HasKey(p world.Point) bool {
	return f.keys.Has(p)
}

// RemainingKeys returns the number of uncollected keys
func (f *Field) RemainingKeys() int {
	return f.keys.Size()
}

// Robots returns the robot positions, sorted.
func (f *Field) Robots() []world.Point {
	return sorted(f.robots)
}

// Keys returns the remaining key positions, sorted.
func (f *Field) Keys() []world.Point {
	return sorted(f.keys)
}

// IsLocked reports whether the door at p is still waiting for its key.
func (f *Field) IsLocked(p world.Point) bool {
	if !f.grid.IsDoor(p) {
		return false
	}
	key, ok := f.grid.DoorKey(p)
	return ok && f.keys.Has(key)
}

// Neighbors yields the orthogonal neighbours of p a robot could step onto
// now, in the order right, down, left, up. Border cells, walls, cells held
// by another robot and locked doors are skipped.
func (f *Field) Neighbors(p world.Point) iter.Seq[world.Point] {
	return func(yield func(world.Point) bool) {
		for _, dir := range world.ScanOrder() {
			n := p.Add(dir)
			if !f.grid.InBounds(n) || f.grid.IsWall(n) || f.robots.Has(n) || f.IsLocked(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// CollectKey moves the robot at robot onto key and removes that key.
// The field is left unchanged when either position is invalid.
func (f *Field) CollectKey(robot, key world.Point) error {
	if !f.robots.Has(robot) {
		return fmt.Errorf("%w: %w %s", ErrPrecondition, ErrNotRobot, robot)
	}
	if !f.keys.Has(key) {
		return fmt.Errorf("%w: %w %s", ErrPrecondition, ErrNotKey, key)
	}
	f.robots.Remove(robot)
	f.robots.Put(key)
	f.keys.Remove(key)
	return nil
}

// Clone returns an independent copy sharing the same grid.
func (f *Field) Clone() *Field {
	c := &Field{
		grid:   f.grid,
		robots: mapset.New[world.Point](),
		keys:   mapset.New[world.Point](),
	}
	f.robots.Each(func(p world.Point) {
		c.robots.Put(p)
	})
	f.keys.Each(func(p world.Point) {
		c.keys.Put(p)
	})
	return c
}

// Signature returns the canonical identity of the field: sorted robot
// positions followed by sorted remaining keys.
func (f *Field) Signature() Signature {
	var b strings.Builder
	b.Grow(8 * (f.robots.Size() + f.keys.Size()))
	writePoints(&b, f.Robots())
	b.WriteByte('|')
	writePoints(&b, f.Keys())
	return Signature(b.String())
}

func writePoints(b *strings.Builder, ps []world.Point) {
	for i, p := range ps {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(p.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Y))
	}
}

func sorted(s mapset.Set[world.Point]) []world.Point {
	ps := make([]world.Point, 0, s.Size())
	s.Each(func(p world.Point) {
		ps = append(ps, p)
	})
	return world.SortPoints(ps)
}
