// Package radar projects dimension percentages onto an 8-axis radar chart.
//
// The chart has one axis per pole, starting at the top and running clockwise
// E, S, T, J, I, N, F, P. Opposite poles of a dimension always sum to 1, so
// the polygon shows both ends of every dimension at once.
package radar

import (
	"errors"
	"math"

	"github.com/abhisek/mbti/internal/scoring"
)

// ErrInvalidSize is returned when the requested drawing size is not positive.
var ErrInvalidSize = errors.New("radar: size must be positive")

// Axis is one spoke of the chart.
type Axis struct {
	Pole      scoring.Pole
	Dimension scoring.Dimension
	First     bool
	// Angle is in radians, canvas orientation (y grows downward).
	Angle float64
}

// axes is the single source of pole order and angles for every derived shape.
var axes = buildAxes()

func buildAxes() []Axis {
	order := []scoring.Pole{
		scoring.PoleE, scoring.PoleS, scoring.PoleT, scoring.PoleJ,
		scoring.PoleI, scoring.PoleN, scoring.PoleF, scoring.PoleP,
	}
	step := 2 * math.Pi / float64(len(order))
	out := make([]Axis, len(order))
	for i, p := range order {
		out[i] = Axis{
			Pole:      p,
			Dimension: p.Dimension(),
			First:     p.IsFirst(),
			Angle:     float64(i)*step - math.Pi/2,
		}
	}
	return out
}

// Axes returns a copy of the axis table.
func Axes() []Axis {
	out := make([]Axis, len(axes))
	copy(out, axes)
	return out
}

// Value returns the axis magnitude in [0,1] for the given percentages.
func (a Axis) Value(p scoring.Percentages) float64 {
	pct := p.Get(a.Dimension)
	if a.First {
		return float64(pct) / 100
	}
	return float64(100-pct) / 100
}

// Point is a coordinate on the drawing surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vertex is a polygon corner for one pole.
type Vertex struct {
	Pole  scoring.Pole `json:"pole"`
	Value float64      `json:"value"`
	Point
}

// Ring is a concentric reference circle.
type Ring struct {
	Fraction float64 `json:"fraction"`
	Radius   float64 `json:"radius"`
}

// AxisLine runs from the centre to a pole's full-value point.
type AxisLine struct {
	Pole scoring.Pole `json:"pole"`
	From Point        `json:"from"`
	To   Point        `json:"to"`
}

// Label anchors a pole letter just outside the plot area.
type Label struct {
	Pole scoring.Pole `json:"pole"`
	Point
}

// Chart is the full geometry needed to draw one radar plot.
type Chart struct {
	Size     float64    `json:"size"`
	Center   Point      `json:"center"`
	Radius   float64    `json:"radius"`
	Vertices []Vertex   `json:"vertices"`
	Rings    []Ring     `json:"rings"`
	Axes     []AxisLine `json:"axes"`
	Labels   []Label    `json:"labels"`
}

// Vertex returns the vertex for pole p.
func (c Chart) Vertex(p scoring.Pole) (Vertex, bool) {
	for _, v := range c.Vertices {
		if v.Pole == p {
			return v, true
		}
	}
	return Vertex{}, false
}

// Projector holds the padding constants used when projecting.
type Projector struct {
	// Padding scales the plot radius so the polygon stays inside the surface.
	Padding float64
	// LabelRadius places labels at this fraction of the half-size.
	LabelRadius float64
	// Rings are fractions of the plot radius at which reference circles are drawn.
	Rings []float64
}

// DefaultProjector returns the projector used by the terminal and SVG renderers.
func DefaultProjector() Projector {
	return Projector{
		Padding:     0.8,
		LabelRadius: 0.95,
		Rings:       []float64{0.25, 0.5, 0.75, 1},
	}
}

// Project computes the chart for a square surface of the given size.
func Project(p scoring.Percentages, size float64) (Chart, error) {
	return DefaultProjector().Project(p, size)
}

// Project computes the chart for a square surface of the given size.
func (pr Projector) Project(p scoring.Percentages, size float64) (Chart, error) {
	if !(size > 0) {
		return Chart{}, ErrInvalidSize
	}

	half := size / 2
	center := Point{X: half, Y: half}
	plotRadius := half * pr.Padding

	chart := Chart{
		Size:     size,
		Center:   center,
		Radius:   plotRadius,
		Vertices: make([]Vertex, 0, len(axes)),
		Rings:    make([]Ring, 0, len(pr.Rings)),
		Axes:     make([]AxisLine, 0, len(axes)),
		Labels:   make([]Label, 0, len(axes)),
	}

	for _, f := range pr.Rings {
		chart.Rings = append(chart.Rings, Ring{Fraction: f, Radius: plotRadius * f})
	}

	for _, a := range axes {
		v := a.Value(p)
		chart.Vertices = append(chart.Vertices, Vertex{
			Pole:  a.Pole,
			Value: v,
			Point: polar(center, a.Angle, v*plotRadius),
		})
		chart.Axes = append(chart.Axes, AxisLine{
			Pole: a.Pole,
			From: center,
			To:   polar(center, a.Angle, plotRadius),
		})
		chart.Labels = append(chart.Labels, Label{
			Pole:  a.Pole,
			Point: polar(center, a.Angle, half*pr.LabelRadius),
		})
	}

	return chart, nil
}

func polar(c Point, angle, r float64) Point {
	return Point{
		X: c.X + math.Cos(angle)*r,
		Y: c.Y + math.Sin(angle)*r,
	}
}
