// Package solver searches the space of robot/key configurations for the
// fewest total steps that collect every key.
//
// Each transition moves one robot to a key it can reach under the current
// lock state: only its nearest key by default, or every reachable key with
// BranchAll. Configurations reached by different move orders share a
// signature and are expanded once.
package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"keymaze/pkg/engine/world"
	"keymaze/pkg/game/field"
)

// Search errors
var (
	// ErrNoSolution means keys exist but no sequence of moves collects them all.
	ErrNoSolution = errors.New("no solution: some keys can never be collected")
	// ErrStateLimit means the visited set grew past the configured limit.
	ErrStateLimit = errors.New("search state limit exceeded")
)

// progressEvery is how many expansions pass between debug progress logs.
const progressEvery = 50000

// Stats describes the work done by one search.
type Stats struct {
	Expanded     int
	Generated    int
	Pruned       int
	Terminals    int
	Visited      int
	PeakFrontier int
	Elapsed      time.Duration
}

// Result is the outcome of a search. Steps is the minimum total number of
// robot moves; it is 0 when the maze has no keys.
type Result struct {
	Steps     int
	Frontier  Frontier
	Branching Branching
	Stats     Stats
}

type options struct {
	frontier   Frontier
	branching  Branching
	stateLimit int
	logger     *slog.Logger
}

// Option configures Solve.
type Option func(*options)

// WithFrontier selects the expansion order. The default is FrontierOrdered.
func WithFrontier(f Frontier) Option {
	return func(o *options) {
		o.frontier = f
	}
}

// WithBranching selects which moves are generated per robot. The default
// is BranchNearest.
func WithBranching(b Branching) Option {
	return func(o *options) {
		o.branching = b
	}
}

// WithStateLimit caps the number of distinct configurations kept in the
// visited set. Zero or a negative value means no limit.
func WithStateLimit(n int) Option {
	return func(o *options) {
		o.stateLimit = n
	}
}

// WithLogger sets the logger used for debug progress output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Solve returns the minimum total steps needed for the robots of g to
// collect every key. ErrNoSolution is returned when keys exist but cannot
// all be reached; a maze without keys solves in zero steps.
func Solve(g *world.Grid, opts ...Option) (Result, error) {
	o := options{
		frontier: FrontierOrdered,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &search{
		opts:   o,
		best:   make(map[field.Signature]int),
		result: Result{Frontier: o.frontier, Branching: o.branching},
	}
	switch o.frontier {
	case FrontierOrdered:
		s.frontier = newOrderedFrontier()
	case FrontierFIFO:
		s.frontier = newFIFOFrontier()
	default:
		return Result{}, fmt.Errorf("unknown frontier %v", o.frontier)
	}
	if o.branching != BranchNearest && o.branching != BranchAll {
		return Result{}, fmt.Errorf("unknown branching %v", o.branching)
	}

	start := time.Now()
	err := s.run(field.New(g))
	s.result.Stats.Visited = len(s.best)
	s.result.Stats.Elapsed = time.Since(start)

	o.logger.Debug("search finished",
		"frontier", o.frontier,
		"steps", s.result.Steps,
		"expanded", s.result.Stats.Expanded,
		"visited", s.result.Stats.Visited,
		"elapsed", s.result.Stats.Elapsed,
		"error", err)

	return s.result, err
}

// search owns the frontier and visited set for one run.
type search struct {
	opts     options
	frontier frontier
	best     map[field.Signature]int
	seq      int
	result   Result
}

func (s *search) run(root *field.Field) error {
	if root.RemainingKeys() == 0 {
		return nil
	}

	s.opts.logger.Debug("search started",
		"frontier", s.opts.frontier,
		"branching", s.opts.branching,
		"robots", len(root.Robots()),
		"keys", root.RemainingKeys())

	s.enqueue(root, root.Signature(), 0)

	solved := false
	stats := &s.result.Stats
	for {
		n, ok := s.frontier.pop()
		if !ok {
			break
		}
		if s.opts.frontier == FrontierOrdered && n.steps > s.best[n.sig] {
			continue
		}

		stats.Expanded++
		if stats.Expanded%progressEvery == 0 {
			s.opts.logger.Debug("search progress",
				"expanded", stats.Expanded,
				"frontier", s.frontier.size(),
				"visited", len(s.best),
				"steps", n.steps)
		}

		if n.field.RemainingKeys() == 0 {
			stats.Terminals++
			if !solved || n.steps < s.result.Steps {
				s.result.Steps = n.steps
			}
			solved = true
			if s.opts.frontier == FrontierOrdered {
				return nil
			}
			continue
		}

		if err := s.expand(n); err != nil {
			return err
		}
	}

	if !solved {
		return ErrNoSolution
	}
	return nil
}

// expand enqueues the children of n: one per robot that can reach a key,
// or one per reachable (robot, key) pair under BranchAll.
func (s *search) expand(n node) error {
	for _, robot := range n.field.Robots() {
		for _, route := range s.moves(n.field, robot) {
			if err := s.follow(n, route); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *search) moves(f *field.Field, robot world.Point) []field.Route {
	if s.opts.branching == BranchAll {
		return f.ReachableKeys(robot)
	}
	if route, ok := f.NearestKey(robot); ok {
		return []field.Route{route}
	}
	return nil
}

// follow applies route to a copy of n and enqueues it unless its
// signature is already known at an equal or better distance.
func (s *search) follow(n node, route field.Route) error {
	child := n.field.Clone()
	if err := child.CollectKey(route.From, route.To); err != nil {
		return fmt.Errorf("expanding %s: %w", n.sig, err)
	}
	s.result.Stats.Generated++

	sig := child.Signature()
	steps := n.steps + route.Length
	if prev, seen := s.best[sig]; seen {
		if s.opts.frontier == FrontierFIFO || prev <= steps {
			s.result.Stats.Pruned++
			return nil
		}
	} else if s.opts.stateLimit > 0 && len(s.best) >= s.opts.stateLimit {
		return fmt.Errorf("%w: %d configurations", ErrStateLimit, len(s.best))
	}

	s.enqueue(child, sig, steps)
	return nil
}

func (s *search) enqueue(f *field.Field, sig field.Signature, steps int) {
	s.best[sig] = steps
	s.frontier.push(node{field: f, sig: sig, steps: steps, seq: s.seq})
	s.seq++
	if size := s.frontier.size(); size > s.result.Stats.PeakFrontier {
		s.result.Stats.PeakFrontier = size
	}
}
