package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"keymaze/pkg/engine/world"
	"keymaze/pkg/game/devtools"
	"keymaze/pkg/game/generator"
	"keymaze/pkg/game/puzzle"
	"keymaze/pkg/game/renderer"
	"keymaze/pkg/game/solver"
	"keymaze/pkg/game/telemetry"
)

var errPuzzlesFailed = errors.New("puzzles failed")

var logger = slog.New(slog.DiscardHandler)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging installs a text handler on w; debug lowers the level so the
// solver's progress records are shown.
func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// inputPaths falls back to stdin when no files are named.
func inputPaths(args []string) []string {
	if len(args) == 0 {
		return []string{puzzle.StdinName}
	}
	return args
}

func loadPuzzles(paths []string) ([]puzzle.Puzzle, error) {
	var all []puzzle.Puzzle
	for _, path := range paths {
		puzzles, err := puzzle.Load(path)
		if err != nil {
			return nil, err
		}
		all = append(all, puzzles...)
	}
	return all, nil
}

type solveConfig struct {
	frontier    solver.Frontier
	branching   solver.Branching
	stateLimit  int
	show        bool
	dump        string
	metricsFile string
}

// solveAll solves every puzzle in paths, printing one result line each.
// It fails when any puzzle is invalid, errors, or misses its expected answer.
func solveAll(w io.Writer, paths []string, cfg solveConfig) error {
	puzzles, err := loadPuzzles(paths)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := telemetry.NewMetrics(reg)
	if err != nil {
		return err
	}

	r := renderer.New(w)
	failed := 0
	for _, p := range puzzles {
		g, err := p.Grid()
		if err != nil {
			metrics.Observe(p.Name, solver.Result{}, err)
			r.RenderResult(p.Name, solver.Result{}, err, p.Expect)
			failed++
			continue
		}

		if cfg.show {
			r.RenderHeading(p.Name)
			r.RenderGrid(g)
		}

		res, solveErr := solver.Solve(g,
			solver.WithFrontier(cfg.frontier),
			solver.WithBranching(cfg.branching),
			solver.WithStateLimit(cfg.stateLimit),
			solver.WithLogger(logger.With("puzzle", p.Name)),
		)
		metrics.Observe(p.Name, res, solveErr)

		switch r.RenderResult(p.Name, res, solveErr, p.Expect) {
		case renderer.Mismatch, renderer.Failed:
			failed++
		}
		if cfg.show {
			r.RenderStats(res)
		}

		if cfg.dump != "" {
			written, err := devtools.DumpToFile(dumpPathFor(cfg.dump, p.Name, len(puzzles)), p, g, res, solveErr)
			if err != nil {
				return fmt.Errorf("dump %s: %w", p.Name, err)
			}
			logger.Info("map dump written", "puzzle", p.Name, "path", written)
		}
	}

	if cfg.metricsFile != "" {
		if err := telemetry.WriteTextfile(cfg.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errPuzzlesFailed, failed, len(puzzles))
	}
	return nil
}

// dumpPathFor suffixes the dump file with the puzzle name when a run
// covers more than one puzzle.
func dumpPathFor(path, name string, count int) string {
	if count <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + name + ext
}

// checkAll validates every puzzle in paths without solving.
func checkAll(w io.Writer, paths []string) error {
	puzzles, err := loadPuzzles(paths)
	if err != nil {
		return err
	}

	r := renderer.New(w)
	failed := 0
	for _, p := range puzzles {
		g, err := p.Grid()
		if !r.RenderCheck(p.Name, g, err) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errPuzzlesFailed, failed, len(puzzles))
	}
	return nil
}

// renderAll draws every puzzle in paths followed by the legend.
func renderAll(w io.Writer, paths []string) error {
	puzzles, err := loadPuzzles(paths)
	if err != nil {
		return err
	}

	r := renderer.New(w)
	grids := make([]*world.Grid, 0, len(puzzles))
	for _, p := range puzzles {
		g, err := p.Grid()
		if err != nil {
			return err
		}
		grids = append(grids, g)
	}

	for i, g := range grids {
		if !renderer.Fits(g) {
			logger.Warn("maze wider than terminal", "puzzle", puzzles[i].Name, "width", g.Width())
		}
		r.RenderHeading(puzzles[i].Name)
		r.RenderGrid(g)
	}
	r.RenderLegend()
	return nil
}

type generateConfig struct {
	opts   generator.Options
	count  int
	seed   int64
	asYAML bool
}

// generateAll writes cfg.count random layouts to w, either as plain text
// separated by blank lines or as a YAML puzzle set whose expect fields hold
// the answer solve reports by default.
func generateAll(w io.Writer, cfg generateConfig) error {
	if cfg.count < 1 {
		return fmt.Errorf("%w: count must be at least 1, got %d", generator.ErrBadOptions, cfg.count)
	}
	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("generating mazes", "generator", generator.DefaultGenerator.Name(), "seed", seed, "count", cfg.count)
	rng := rand.New(rand.NewSource(seed))

	puzzles := make([]puzzle.Puzzle, 0, cfg.count)
	for i := 0; i < cfg.count; i++ {
		rows, err := generator.DefaultGenerator.Generate(rng, cfg.opts)
		if err != nil {
			return err
		}
		puzzles = append(puzzles, puzzle.Puzzle{Name: fmt.Sprintf("generated-%d-%d", seed, i+1), Layout: rows})
	}

	if !cfg.asYAML {
		for i, p := range puzzles {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, strings.Join(p.Layout, "\n"))
		}
		return nil
	}

	for i := range puzzles {
		g, err := puzzles[i].Grid()
		if err != nil {
			return err
		}
		res, err := solver.Solve(g, solver.WithLogger(logger.With("puzzle", puzzles[i].Name)))
		switch {
		case err == nil:
			steps := res.Steps
			puzzles[i].Expect = &steps
		case errors.Is(err, solver.ErrNoSolution):
			puzzles[i].Description = "no solution"
		default:
			return err
		}
	}
	return puzzle.Encode(w, puzzles)
}
