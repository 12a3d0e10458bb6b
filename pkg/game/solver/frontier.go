package solver

import (
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/queue"

	"keymaze/pkg/game/field"
)

// Frontier selects the order in which configurations are expanded.
type Frontier int

const (
	// FrontierOrdered expands the configuration with the fewest cumulative
	// steps first, so the first settled terminal configuration is optimal.
	FrontierOrdered Frontier = iota
	// FrontierFIFO expands configurations in discovery order and never
	// revisits a signature, even when a shorter route to it turns up later.
	FrontierFIFO
)

// String returns the flag spelling of f
func (f Frontier) String() string {
	switch f {
	case FrontierOrdered:
		return "ordered"
	case FrontierFIFO:
		return "fifo"
	default:
		return fmt.Sprintf("Frontier(%d)", int(f))
	}
}

// ParseFrontier parses the flag spelling of a frontier.
func ParseFrontier(s string) (Frontier, error) {
	switch s {
	case "ordered", "":
		return FrontierOrdered, nil
	case "fifo", "bfs":
		return FrontierFIFO, nil
	default:
		return 0, fmt.Errorf("unknown frontier %q (want ordered or fifo)", s)
	}
}

// node is a configuration waiting in the frontier.
type node struct {
	field *field.Field
	sig   field.Signature
	steps int
	seq   int
}

type frontier interface {
	push(n node)
	pop() (node, bool)
	size() int
}

type fifoFrontier struct {
	q *queue.Queue[node]
	n int
}

func newFIFOFrontier() *fifoFrontier {
	return &fifoFrontier{q: queue.New[node]()}
}

func (f *fifoFrontier) push(n node) {
	f.q.Enqueue(n)
	f.n++
}

func (f *fifoFrontier) pop() (node, bool) {
	if f.q.Empty() {
		return node{}, false
	}
	f.n--
	return f.q.Dequeue(), true
}

func (f *fifoFrontier) size() int {
	return f.n
}

type orderedFrontier struct {
	h *heap.Heap[node]
}

func newOrderedFrontier() *orderedFrontier {
	return &orderedFrontier{h: heap.New(func(a, b node) bool {
		if a.steps != b.steps {
			return a.steps < b.steps
		}
		return a.seq < b.seq
	})}
}

func (f *orderedFrontier) push(n node) {
	f.h.Push(n)
}

func (f *orderedFrontier) pop() (node, bool) {
	return f.h.Pop()
}

func (f *orderedFrontier) size() int {
	return f.h.Size()
}

// Branching selects which moves a configuration is expanded into.
type Branching int

const (
	// BranchNearest moves each robot only to its nearest reachable key,
	// keeping the branching factor at the robot count.
	BranchNearest Branching = iota
	// BranchAll moves each robot to every key it can reach. It is slower
	// but exact, including for single-robot mazes where the nearest key
	// first is not the best order.
	BranchAll
)

// String returns the flag spelling of b
func (b Branching) String() string {
	switch b {
	case BranchNearest:
		return "nearest"
	case BranchAll:
		return "all"
	default:
		return fmt.Sprintf("Branching(%d)", int(b))
	}
}

// ParseBranching parses the flag spelling of a branching mode.
func ParseBranching(s string) (Branching, error) {
	switch s {
	case "nearest", "":
		return BranchNearest, nil
	case "all":
		return BranchAll, nil
	default:
		return 0, fmt.Errorf("unknown branching %q (want nearest or all)", s)
	}
}
