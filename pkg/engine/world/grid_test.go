package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var corridor = []string{
	"#########",
	"#b.A.@.a#",
	"#########",
}

func TestNewGrid_Corridor(t *testing.T) {
	g, err := NewGrid(corridor)
	require.NoError(t, err)

	assert.Equal(t, 9, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, []Point{Pt(5, 1)}, g.Robots())
	assert.Equal(t, []Point{Pt(1, 1), Pt(7, 1)}, g.Keys())
	assert.Equal(t, []byte("ab"), g.KeyLetters())
	assert.Equal(t, 2, g.KeyCount())
	assert.Equal(t, []Point{Pt(3, 1)}, g.Doors())

	key, ok := g.DoorKey(Pt(3, 1))
	require.True(t, ok, "door at (3,1) should be paired")
	assert.Equal(t, Pt(7, 1), key, "door A opens with key a")

	_, ok = g.DoorKey(Pt(2, 1))
	assert.False(t, ok, "empty cell has no door key")
}

func TestNewGrid_Queries(t *testing.T) {
	g, err := NewGrid(corridor)
	require.NoError(t, err)

	assert.True(t, g.IsWall(Pt(0, 0)))
	assert.False(t, g.IsWall(Pt(2, 1)))
	assert.True(t, g.IsDoor(Pt(3, 1)))
	assert.False(t, g.IsDoor(Pt(1, 1)))
	assert.Equal(t, Key, g.KindAt(Pt(1, 1)))
	assert.Equal(t, Start, g.KindAt(Pt(5, 1)))
	assert.Equal(t, Wall, g.KindAt(Pt(-1, 4)), "off-grid reads as wall")
	assert.Equal(t, byte('A'), g.LetterAt(Pt(3, 1)))
	assert.Equal(t, byte(0), g.LetterAt(Pt(42, 0)))
}

func TestGrid_InBoundsExcludesBorder(t *testing.T) {
	// The border is open floor here; it must still be excluded.
	g, err := NewGrid([]string{
		".....",
		"..@..",
		".....",
	})
	require.NoError(t, err)

	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), false},
		{Pt(0, 1), false},
		{Pt(4, 1), false},
		{Pt(2, 0), false},
		{Pt(2, 2), false},
		{Pt(1, 1), true},
		{Pt(3, 1), true},
		{Pt(5, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, g.InBounds(tt.p))
			assert.Equal(t, g.IsValidPosition(tt.p) && !tt.want, g.IsOnPerimeter(tt.p))
		})
	}
}

func TestNewGrid_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"no rows", nil, ErrEmptyGrid},
		{"empty row", []string{""}, ErrEmptyGrid},
		{"ragged", []string{"#####", "#@.#", "#####"}, ErrRaggedRows},
		{"unknown char", []string{"#####", "#@?.#", "#####"}, ErrUnknownCell},
		{"no robots", []string{"#####", "#a..#", "#####"}, ErrNoRobots},
		{"orphan door", []string{"#####", "#@B.#", "#####"}, ErrOrphanDoor},
		{"duplicate key", []string{"######", "#a@.a#", "######"}, ErrDuplicateKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.rows)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tt.want), "err = %v, want %v", err, tt.want)
			assert.True(t, errors.Is(err, ErrInvalidGrid), "err = %v should wrap ErrInvalidGrid", err)
		})
	}
}

func TestNewGrid_CopiesRows(t *testing.T) {
	rows := []string{"###", "#@#", "###"}
	g, err := NewGrid(rows)
	require.NoError(t, err)

	rows[1] = "#.#"
	assert.Equal(t, Start, g.KindAt(Pt(1, 1)))
	assert.Equal(t, "#@#", g.Rows()[1])
}

func TestGrid_ForEachCell(t *testing.T) {
	g, err := NewGrid(corridor)
	require.NoError(t, err)

	counts := map[Kind]int{}
	g.ForEachCell(func(p Point, kind Kind, letter byte) {
		counts[kind]++
		assert.Equal(t, g.LetterAt(p), letter)
	})
	assert.Equal(t, 27, counts[Empty]+counts[Wall]+counts[Start]+counts[Key]+counts[Door])
	assert.Equal(t, 2, counts[Key])
	assert.Equal(t, 1, counts[Door])
	assert.Equal(t, 1, counts[Start])
	assert.Equal(t, 3, counts[Empty])
}
