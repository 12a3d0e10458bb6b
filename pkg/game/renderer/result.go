package renderer

import (
	"errors"
	"fmt"

	"keymaze/pkg/engine/world"
	"keymaze/pkg/game/solver"
)

// Outcome classifies a solve result for display and exit codes.
type Outcome int

const (
	Solved Outcome = iota
	Unsolvable
	Mismatch
	Failed
)

// Classify maps a solve result, and the expected answer if known, to an outcome.
func Classify(res solver.Result, err error, expect *int) Outcome {
	switch {
	case errors.Is(err, solver.ErrNoSolution):
		if expect != nil {
			return Mismatch
		}
		return Unsolvable
	case err != nil:
		return Failed
	case expect != nil && *expect != res.Steps:
		return Mismatch
	default:
		return Solved
	}
}

// RenderResult prints one line summarising the solve of the named puzzle.
func (r *Renderer) RenderResult(name string, res solver.Result, err error, expect *int) Outcome {
	outcome := Classify(res, err, expect)
	switch outcome {
	case Solved:
		fmt.Fprintf(r.w, "%s %s: %s\n", r.colorGood.Sprint("✓"), name,
			TN("%d step", "%d steps", res.Steps, res.Steps))
	case Unsolvable:
		fmt.Fprintf(r.w, "%s %s: %s\n", r.colorDenied.Sprint("✗"), name, T("no solution"))
	case Mismatch:
		got := T("no solution")
		if err == nil {
			got = TN("%d step", "%d steps", res.Steps, res.Steps)
		}
		fmt.Fprintf(r.w, "%s %s: %s\n", r.colorDenied.Sprint("✗"), name,
			T("got %s, expected %d", got, *expect))
	case Failed:
		fmt.Fprintf(r.w, "%s %s: %v\n", r.colorDenied.Sprint("!"), name, err)
	}
	return outcome
}

// RenderStats prints the search counters of res.
func (r *Renderer) RenderStats(res solver.Result) {
	s := res.Stats
	fmt.Fprintln(r.w, r.colorSubtle.Sprint(T(
		"  %s/%s: expanded %d, generated %d, pruned %d, visited %d, peak frontier %d, %v",
		res.Frontier, res.Branching, s.Expanded, s.Generated, s.Pruned, s.Visited, s.PeakFrontier, s.Elapsed)))
}

// RenderHeading prints a section title.
func (r *Renderer) RenderHeading(title string) {
	fmt.Fprintln(r.w, r.colorHeading.Sprint(title))
}

// RenderCheck prints whether the named puzzle is a valid maze and
// reports true when it is.
func (r *Renderer) RenderCheck(name string, g *world.Grid, err error) bool {
	if err != nil {
		fmt.Fprintf(r.w, "%s %s: %v\n", r.colorDenied.Sprint("!"), name, err)
		return false
	}
	fmt.Fprintf(r.w, "%s %s: %s\n", r.colorGood.Sprint("✓"), name,
		T("valid %dx%d, %s, %s", g.Width(), g.Height(),
			TN("%d key", "%d keys", g.KeyCount(), g.KeyCount()),
			TN("%d robot", "%d robots", len(g.Robots()), len(g.Robots()))))
	return true
}
