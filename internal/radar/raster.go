package radar

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/mbti/internal/scoring"
)

// MinRasterRows is the smallest grid that still separates all eight labels.
const MinRasterRows = 9

// Mark classifies a grid cell. Higher marks overwrite lower ones.
type Mark uint8

const (
	MarkNone Mark = iota
	MarkRing
	MarkAxis
	MarkEdge
	MarkVertex
	MarkLabel
)

// markRunes is the rune line draws for each mark. Labels are placed with set
// using their pole letter, so MarkLabel only needs a placeholder.
var markRunes = [...]rune{
	MarkNone:   ' ',
	MarkRing:   '·',
	MarkAxis:   '∙',
	MarkEdge:   '•',
	MarkVertex: '◆',
	MarkLabel:  ' ',
}

// Grid is a character raster of a chart. Columns are doubled relative to rows
// because terminal cells are roughly twice as tall as they are wide.
type Grid struct {
	Width  int
	Height int
	runes  []rune
	marks  []Mark
}

// Raster projects p onto a grid rows lines tall.
func Raster(p scoring.Percentages, rows int) (*Grid, error) {
	if rows < MinRasterRows {
		return nil, fmt.Errorf("%w: raster needs at least %d rows, got %d", ErrInvalidSize, MinRasterRows, rows)
	}
	chart, err := Project(p, float64(rows-1))
	if err != nil {
		return nil, err
	}
	return chart.Rasterize(), nil
}

// Rasterize draws the chart at one row per unit of size.
func (c Chart) Rasterize() *Grid {
	rows := int(math.Round(c.Size)) + 1
	cols := 2*(rows-1) + 1
	g := &Grid{
		Width:  cols,
		Height: rows,
		runes:  make([]rune, rows*cols),
		marks:  make([]Mark, rows*cols),
	}
	for i := range g.runes {
		g.runes[i] = ' '
	}

	for _, r := range c.Rings {
		for i, a := range c.Axes {
			b := c.Axes[(i+1)%len(c.Axes)]
			g.line(lerp(a.From, a.To, r.Fraction), lerp(b.From, b.To, r.Fraction), MarkRing)
		}
	}
	for _, a := range c.Axes {
		g.line(a.From, a.To, MarkAxis)
	}
	for i, v := range c.Vertices {
		next := c.Vertices[(i+1)%len(c.Vertices)]
		g.line(v.Point, next.Point, MarkEdge)
	}
	for _, v := range c.Vertices {
		x, y := g.cell(v.Point)
		g.set(x, y, markRunes[MarkVertex], MarkVertex)
	}
	for _, l := range c.Labels {
		x, y := g.cell(l.Point)
		g.set(x, y, []rune(string(l.Pole))[0], MarkLabel)
	}
	return g
}

// At returns the rune and mark at column x, row y.
func (g *Grid) At(x, y int) (rune, Mark) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return ' ', MarkNone
	}
	i := y*g.Width + x
	return g.runes[i], g.marks[i]
}

// Find returns the first cell holding r with mark m, scanning row by row.
func (g *Grid) Find(r rune, m Mark) (x, y int, ok bool) {
	for i := range g.runes {
		if g.runes[i] == r && g.marks[i] == m {
			return i % g.Width, i / g.Width, true
		}
	}
	return 0, 0, false
}

// Lines returns each row as plain text with trailing spaces removed.
func (g *Grid) Lines() []string {
	out := make([]string, g.Height)
	for y := range g.Height {
		out[y] = strings.TrimRight(string(g.runes[y*g.Width:(y+1)*g.Width]), " ")
	}
	return out
}

// String renders the grid as plain text.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

func (g *Grid) cell(p Point) (int, int) {
	return int(math.Round(p.X * 2)), int(math.Round(p.Y))
}

func (g *Grid) set(x, y int, r rune, m Mark) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	i := y*g.Width + x
	if m < g.marks[i] {
		return
	}
	g.runes[i] = r
	g.marks[i] = m
}

// line draws from a to b with Bresenham's algorithm.
func (g *Grid) line(a, b Point, m Mark) {
	x0, y0 := g.cell(a)
	x1, y1 := g.cell(b)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	r := markRunes[m]
	err := dx + dy
	for {
		g.set(x0, y0, r, m)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
