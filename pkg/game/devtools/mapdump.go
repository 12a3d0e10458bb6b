// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"keymaze/pkg/engine/world"
	"keymaze/pkg/game/puzzle"
	"keymaze/pkg/game/solver"
)

// DefaultDumpFilename is used when no dump path is given.
const DefaultDumpFilename = "map.txt"

// DumpToFile writes a full debug dump of p and its solve result to path
// and returns the absolute path written.
func DumpToFile(path string, p puzzle.Puzzle, g *world.Grid, res solver.Result, solveErr error) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	Dump(f, p, g, res, solveErr)

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

// Dump writes metadata, legend, layout, entity listings and search
// statistics. Format is human-readable: sections of "key: value" lines.
func Dump(w io.Writer, p puzzle.Puzzle, g *world.Grid, res solver.Result, solveErr error) {
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (layout, doors, keys, search) ===")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "name: %s\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(w, "description: %s\n", p.Description)
	}
	fmt.Fprintf(w, "grid_cols: %d\n", g.Width())
	fmt.Fprintf(w, "grid_rows: %d\n", g.Height())
	fmt.Fprintln(w, "coordinate_system: x,y (0-based, x=column, y=row; border excluded from traversal)")
	fmt.Fprintf(w, "robots: %d\n", len(g.Robots()))
	fmt.Fprintf(w, "keys: %d\n", g.KeyCount())
	fmt.Fprintf(w, "doors: %d\n", len(g.Doors()))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = empty  # = wall  @ = robot start  a-z = key  A-Z = door opened by the matching key")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	for _, row := range g.Rows() {
		fmt.Fprintln(w, row)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Robots:")
	for _, pt := range g.Robots() {
		fmt.Fprintf(w, "  x: %d y: %d\n", pt.X, pt.Y)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Keys:")
	for _, pt := range g.Keys() {
		fmt.Fprintf(w, "  x: %d y: %d letter: %c\n", pt.X, pt.Y, g.LetterAt(pt))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Doors:")
	for _, pt := range g.Doors() {
		key, _ := g.DoorKey(pt)
		fmt.Fprintf(w, "  x: %d y: %d letter: %c key_x: %d key_y: %d\n", pt.X, pt.Y, g.LetterAt(pt), key.X, key.Y)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Search ---")
	fmt.Fprintf(w, "frontier: %s\n", res.Frontier)
	fmt.Fprintf(w, "branching: %s\n", res.Branching)
	if solveErr != nil {
		fmt.Fprintf(w, "error: %v\n", solveErr)
	} else {
		fmt.Fprintf(w, "steps: %d\n", res.Steps)
	}
	if p.Expect != nil {
		fmt.Fprintf(w, "expect: %d\n", *p.Expect)
	}
	fmt.Fprintf(w, "expanded: %d\n", res.Stats.Expanded)
	fmt.Fprintf(w, "generated: %d\n", res.Stats.Generated)
	fmt.Fprintf(w, "pruned: %d\n", res.Stats.Pruned)
	fmt.Fprintf(w, "terminals: %d\n", res.Stats.Terminals)
	fmt.Fprintf(w, "visited: %d\n", res.Stats.Visited)
	fmt.Fprintf(w, "peak_frontier: %d\n", res.Stats.PeakFrontier)
	fmt.Fprintf(w, "elapsed: %v\n", res.Stats.Elapsed)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END MAP DUMP ===")
}
