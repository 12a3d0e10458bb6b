// Package renderer draws mazes, search configurations and solve results
// for the terminal.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"keymaze/pkg/engine/terminal"
	"keymaze/pkg/engine/world"
	"keymaze/pkg/game/field"
)

// Icon constants
const (
	IconWall   = "▒"
	IconBorder = "█"
	IconFloor  = "·"
	IconRobot  = "@"
)

// Renderer writes styled output to a single writer.
type Renderer struct {
	w io.Writer

	colorWall       color.Style
	colorFloor      color.Style
	colorKey        color.Style
	colorDoorLocked color.Style
	colorDoorOpen   color.Style
	colorRobot      color.Style
	colorGood       color.Style
	colorDenied     color.Style
	colorSubtle     color.Style
	colorHeading    color.Style
}

// New creates a renderer writing to w and initialises its styles.
func New(w io.Writer) *Renderer {
	r := &Renderer{w: w}
	r.Init()
	return r
}

// Init initializes the color styles
func (r *Renderer) Init() {
	r.colorWall = color.Style{color.FgGray}
	r.colorFloor = color.Style{color.FgGray, color.OpBold}
	r.colorKey = color.Style{color.FgGreen, color.OpBold}
	r.colorDoorLocked = color.Style{color.FgRed, color.OpBold}
	r.colorDoorOpen = color.Style{color.FgYellow}
	r.colorRobot = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	r.colorGood = color.Style{color.FgGreen, color.OpBold}
	r.colorDenied = color.Style{color.FgRed, color.OpBold}
	r.colorSubtle = color.Style{color.FgGray, color.OpBold}
	r.colorHeading = color.Style{color.FgMagenta, color.OpBold}
}

// SetColor turns ANSI colour output on or off for every renderer.
func SetColor(enabled bool) {
	color.Enable = enabled
}

// Fits reports whether g is narrow enough to draw in the current terminal.
func Fits(g *world.Grid) bool {
	return g.Width() <= terminal.GetWidth()
}

// RenderCell returns the styled representation of the cell at p in f.
func (r *Renderer) RenderCell(f *field.Field, p world.Point) string {
	g := f.Grid()
	switch {
	case f.HasRobot(p):
		return r.colorRobot.Sprint(IconRobot)
	case f.HasKey(p):
		return r.colorKey.Sprintf("%c", g.LetterAt(p))
	}

	switch g.KindAt(p) {
	case world.Wall:
		if g.IsOnPerimeter(p) {
			return r.colorWall.Sprint(IconBorder)
		}
		return r.colorWall.Sprint(IconWall)
	case world.Door:
		if f.IsLocked(p) {
			return r.colorDoorLocked.Sprintf("%c", g.LetterAt(p))
		}
		return r.colorDoorOpen.Sprintf("%c", world.KeyLetter(g.LetterAt(p)))
	default:
		return r.colorFloor.Sprint(IconFloor)
	}
}

// RenderField draws every cell of f, one grid row per line.
func (r *Renderer) RenderField(f *field.Field) {
	g := f.Grid()
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			b.WriteString(r.RenderCell(f, world.Pt(x, y)))
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(r.w, b.String())
}

// RenderGrid draws the initial configuration of g.
func (r *Renderer) RenderGrid(g *world.Grid) {
	r.RenderField(field.New(g))
}

// RenderLegend prints what each symbol means.
func (r *Renderer) RenderLegend() {
	fmt.Fprintf(r.w, "%s %s  %s %s  %s %s  %s %s  %s %s\n",
		r.colorRobot.Sprint(IconRobot), T("robot"),
		r.colorKey.Sprint("a"), T("key"),
		r.colorDoorLocked.Sprint("A"), T("locked door"),
		r.colorDoorOpen.Sprint("a"), T("open door"),
		r.colorWall.Sprint(IconWall), T("wall"))
}
