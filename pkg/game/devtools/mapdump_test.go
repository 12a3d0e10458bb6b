package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keymaze/pkg/game/puzzle"
	"keymaze/pkg/game/solver"
)

func corridor() puzzle.Puzzle {
	return puzzle.Puzzle{
		Name: "corridor",
		Layout: []string{
			"#########",
			"#b.A.@.a#",
			"#########",
		},
	}
}

func TestDump_Sections(t *testing.T) {
	p := corridor()
	g, err := p.Grid()
	require.NoError(t, err)
	res, err := solver.Solve(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	Dump(&buf, p, g, res, nil)
	out := buf.String()

	assert.Contains(t, out, "name: corridor\n")
	assert.Contains(t, out, "keys: 2\n")
	assert.Contains(t, out, "#b.A.@.a#\n")
	assert.Contains(t, out, "  x: 3 y: 1 letter: A key_x: 7 key_y: 1\n")
	assert.Contains(t, out, "steps: 8\n")
	assert.Contains(t, out, "frontier: ordered\n")
	assert.Contains(t, out, "=== END MAP DUMP ===")
}

func TestDump_ReportsError(t *testing.T) {
	p := puzzle.Puzzle{Name: "locked", Layout: []string{"#######", "#@.A.a#", "#######"}}
	g, err := p.Grid()
	require.NoError(t, err)
	res, solveErr := solver.Solve(g)
	require.Error(t, solveErr)

	var buf bytes.Buffer
	Dump(&buf, p, g, res, solveErr)
	assert.Contains(t, buf.String(), "error: no solution")
	assert.NotContains(t, buf.String(), "steps:")
}

func TestDumpToFile(t *testing.T) {
	p := corridor()
	g, err := p.Grid()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dump.txt")
	written, err := DumpToFile(path, p, g, solver.Result{Steps: 8}, nil)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "steps: 8")
}
