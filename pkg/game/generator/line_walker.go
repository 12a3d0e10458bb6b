package generator

import (
	"math/rand"

	"keymaze/pkg/engine/world"
)

// LineWalkerGenerator generates maps by walking lines in random directions
// with branching probability
type LineWalkerGenerator struct{}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

// canvas is the mutable cell matrix a layout is carved into.
type canvas struct {
	cells         [][]byte
	width, height int
}

func newCanvas(width, height int) *canvas {
	c := &canvas{cells: make([][]byte, height), width: width, height: height}
	for y := range c.cells {
		c.cells[y] = make([]byte, width)
		for x := range c.cells[y] {
			c.cells[y][x] = world.WallChar
		}
	}
	return c
}

// playable reports whether p is off the perimeter.
func (c *canvas) playable(p world.Point) bool {
	return p.X > 0 && p.Y > 0 && p.X < c.width-1 && p.Y < c.height-1
}

func (c *canvas) carve(p world.Point) {
	if c.playable(p) {
		c.cells[p.Y][p.X] = world.EmptyChar
	}
}

// open returns carved cells in row-major order.
func (c *canvas) open() []world.Point {
	var pts []world.Point
	for y := range c.cells {
		for x, ch := range c.cells[y] {
			if ch == world.EmptyChar {
				pts = append(pts, world.Pt(x, y))
			}
		}
	}
	return pts
}

func (c *canvas) rows() []string {
	rows := make([]string, c.height)
	for y := range c.cells {
		rows[y] = string(c.cells[y])
	}
	return rows
}

// Generate carves corridors out from the centre and then scatters robots,
// keys and doors over the carved cells. The same rng state always yields the
// same layout. Doors may wall off their own key, so a layout is valid but not
// necessarily solvable.
func (g *LineWalkerGenerator) Generate(rng *rand.Rand, opts Options) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := newCanvas(opts.Width, opts.Height)
	centre := world.Pt(opts.Width/2, opts.Height/2)
	c.carve(centre)

	// Scale corridor length and branching with the playable area
	area := (opts.Width - 2) * (opts.Height - 2)
	minDist := 2 + area/200
	maxDist := 4 + area/100
	branchProb := float32(0.25) + float32(area)/2000
	if branchProb > 0.65 {
		branchProb = 0.65
	}

	// Build main corridors in all four directions
	for _, dir := range world.AllDirections() {
		g.buildLine(rng, c, centre, dir, branchProb, minDist, maxDist)
	}

	open := c.open()
	need := opts.Robots + opts.Keys + opts.Doors
	if len(open) < need {
		return nil, errTooSmall(len(open), need)
	}
	rng.Shuffle(len(open), func(i, j int) { open[i], open[j] = open[j], open[i] })

	place := func(ch byte) {
		p := open[0]
		open = open[1:]
		c.cells[p.Y][p.X] = ch
	}
	for i := 0; i < opts.Robots; i++ {
		place(world.StartChar)
	}
	for i := 0; i < opts.Keys; i++ {
		place(byte('a' + i))
	}
	for i := 0; i < opts.Doors; i++ {
		place(byte('A' + i))
	}

	return c.rows(), nil
}

// randomDirection returns a random cardinal direction
func (g *LineWalkerGenerator) randomDirection(rng *rand.Rand) world.Direction {
	dirs := world.AllDirections()
	return dirs[rng.Intn(len(dirs))]
}

// buildLine carves a corridor starting at p in the given direction,
// branching off in random directions as it goes. Cells on the perimeter are
// never carved.
func (g *LineWalkerGenerator) buildLine(rng *rand.Rand, c *canvas, p world.Point, dir world.Direction, branchProbability float32, minDist, maxDist int) {
	if !dir.IsValid() {
		dir = g.randomDirection(rng)
	}

	distance := minDist + rng.Intn(maxDist-minDist+1)

	for segment := 0; segment < distance; segment++ {
		c.carve(p)

		// If the next cell would be outside playable area, stop here
		next := p.Add(dir)
		if !c.playable(next) {
			return
		}

		if branchProbability > 0 && rng.Float32() < branchProbability {
			g.buildLine(rng, c, p, g.randomDirection(rng), branchProbability-.1, minDist, maxDist)
		}

		p = next
	}

	c.carve(p)
}
