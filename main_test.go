package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keymaze/pkg/engine/world"
	"keymaze/pkg/game/generator"
	"keymaze/pkg/game/renderer"
	"keymaze/pkg/game/solver"
)

const corridorMaze = "#########\n#b.A.@.a#\n#########\n"

const puzzleSet = `puzzles:
  - name: corridor
    layout:
      - "#########"
      - "#b.A.@.a#"
      - "#########"
    expect: 8
  - name: wrong
    layout:
      - "#####"
      - "#@.a#"
      - "#####"
    expect: 5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func plainOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	renderer.SetColor(false)
	t.Cleanup(func() { renderer.SetColor(true) })
	return &bytes.Buffer{}
}

func TestSolveAll_TextFile(t *testing.T) {
	buf := plainOutput(t)
	path := writeFile(t, "corridor.txt", corridorMaze)

	require.NoError(t, solveAll(buf, []string{path}, solveConfig{}))
	assert.Equal(t, "✓ corridor: 8 steps\n", buf.String())
}

func TestSolveAll_ExpectMismatchFails(t *testing.T) {
	buf := plainOutput(t)
	path := writeFile(t, "set.yaml", puzzleSet)

	err := solveAll(buf, []string{path}, solveConfig{})
	require.ErrorIs(t, err, errPuzzlesFailed)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, buf.String(), "✓ corridor: 8 steps\n")
	assert.Contains(t, buf.String(), "✗ wrong: got 2 steps, expected 5\n")
}

func TestSolveAll_NoSolutionIsNotAFailure(t *testing.T) {
	buf := plainOutput(t)
	path := writeFile(t, "locked.txt", "#######\n#@.A.a#\n#######\n")

	require.NoError(t, solveAll(buf, []string{path}, solveConfig{}))
	assert.Equal(t, "✗ locked: no solution\n", buf.String())
}

func TestSolveAll_InvalidGridFails(t *testing.T) {
	buf := plainOutput(t)
	path := writeFile(t, "norobot.txt", "#####\n#..a#\n#####\n")

	err := solveAll(buf, []string{path}, solveConfig{})
	require.ErrorIs(t, err, errPuzzlesFailed)
	assert.Contains(t, buf.String(), "! norobot:")
}

func TestSolveAll_StateLimitFails(t *testing.T) {
	buf := plainOutput(t)
	path := writeFile(t, "corridor.txt", corridorMaze)

	err := solveAll(buf, []string{path}, solveConfig{stateLimit: 1})
	require.ErrorIs(t, err, errPuzzlesFailed)
	assert.Contains(t, buf.String(), solver.ErrStateLimit.Error())
}

func TestSolveAll_MissingFile(t *testing.T) {
	buf := plainOutput(t)
	err := solveAll(buf, []string{filepath.Join(t.TempDir(), "absent.txt")}, solveConfig{})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolveAll_ShowDumpAndMetrics(t *testing.T) {
	buf := plainOutput(t)
	dir := t.TempDir()
	path := writeFile(t, "set.yaml", puzzleSet)
	cfg := solveConfig{
		branching:   solver.BranchAll,
		show:        true,
		dump:        filepath.Join(dir, "dump.txt"),
		metricsFile: filepath.Join(dir, "keymaze.prom"),
	}

	err := solveAll(buf, []string{path}, cfg)
	require.True(t, errors.Is(err, errPuzzlesFailed))
	assert.Contains(t, buf.String(), "ordered/all: expanded")

	for _, name := range []string{"dump-corridor.txt", "dump-wrong.txt"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "=== END MAP DUMP ===")
	}

	metrics, err := os.ReadFile(cfg.metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `keymaze_solve_runs_total{branching="all",frontier="ordered",outcome="solved"} 2`)
	assert.Contains(t, string(metrics), `keymaze_solve_steps{puzzle="corridor"} 8`)
}

func TestDumpPathFor(t *testing.T) {
	assert.Equal(t, "map.txt", dumpPathFor("map.txt", "corridor", 1))
	assert.Equal(t, "out/map-corridor.txt", dumpPathFor("out/map.txt", "corridor", 3))
	assert.Equal(t, "map-corridor", dumpPathFor("map", "corridor", 2))
}

func TestCheckAll(t *testing.T) {
	buf := plainOutput(t)
	good := writeFile(t, "corridor.txt", corridorMaze)
	bad := writeFile(t, "orphan.txt", "#####\n#@.A#\n#####\n")

	err := checkAll(buf, []string{good, bad})
	require.ErrorIs(t, err, errPuzzlesFailed)
	assert.Contains(t, buf.String(), "✓ corridor: valid 9x3, 2 keys, 1 robot\n")
	assert.Contains(t, buf.String(), "! orphan:")
	assert.Contains(t, buf.String(), world.ErrOrphanDoor.Error())
}

func TestRenderAll(t *testing.T) {
	buf := plainOutput(t)
	path := writeFile(t, "corridor.txt", corridorMaze)

	require.NoError(t, renderAll(buf, []string{path}))
	assert.Contains(t, buf.String(), "corridor\n█████████\n█b·A·@·a█\n█████████\n")
	assert.Contains(t, buf.String(), "locked door")
}

func TestInputPaths(t *testing.T) {
	assert.Equal(t, []string{"-"}, inputPaths(nil))
	assert.Equal(t, []string{"a.txt"}, inputPaths([]string{"a.txt"}))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "keymaze dev\n", out.String())
}

func TestSolveCommand_UnknownFrontier(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"solve", "--frontier", "random", "x.txt"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		frontierName = "ordered"
	})

	assert.Error(t, rootCmd.Execute())
}

func TestGenerateAll_TextIsSolvable(t *testing.T) {
	var out bytes.Buffer
	opts := generator.Options{Width: 11, Height: 7, Robots: 1, Keys: 2}
	require.NoError(t, generateAll(&out, generateConfig{opts: opts, count: 1, seed: 3}))

	path := writeFile(t, "generated.txt", out.String())
	buf := plainOutput(t)
	require.NoError(t, solveAll(buf, []string{path}, solveConfig{}))
	assert.Contains(t, buf.String(), "✓ generated:")
}

func TestGenerateAll_YAMLExpectationsHold(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, generateAll(&out, generateConfig{opts: generator.DefaultOptions, count: 3, seed: 11, asYAML: true}))

	path := writeFile(t, "generated.yaml", out.String())
	buf := plainOutput(t)
	require.NoError(t, solveAll(buf, []string{path}, solveConfig{}))
	assert.Contains(t, buf.String(), "generated-11-3")
}

func TestGenerateAll_BadCount(t *testing.T) {
	err := generateAll(&bytes.Buffer{}, generateConfig{opts: generator.DefaultOptions})
	assert.ErrorIs(t, err, generator.ErrBadOptions)
}
