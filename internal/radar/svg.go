package radar

import (
	"fmt"
	"strconv"
	"strings"
)

// SVGOptions controls colours of the rendered chart.
type SVGOptions struct {
	Stroke string // grid and axis colour
	Fill   string // polygon colour
	Text   string // label colour
}

// DefaultSVGOptions matches the terminal theme's teal accent.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Stroke: "#94A3B8",
		Fill:   "#34D399",
		Text:   "#A1A1AA",
	}
}

// SVG renders the chart as a standalone SVG document.
func (c Chart) SVG(opts SVGOptions) string {
	var b strings.Builder
	size := num(c.Size)

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		size, size, size, size)

	for _, r := range c.Rings {
		fmt.Fprintf(&b, `  <circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-opacity="0.3" stroke-dasharray="4 4"/>`+"\n",
			num(c.Center.X), num(c.Center.Y), num(r.Radius), opts.Stroke)
	}

	for i, a := range c.Axes {
		fmt.Fprintf(&b, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-opacity="0.3"/>`+"\n",
			num(a.From.X), num(a.From.Y), num(a.To.X), num(a.To.Y), opts.Stroke)
		l := c.Labels[i]
		fmt.Fprintf(&b, `  <text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" font-size="10" font-weight="bold" fill="%s">%s</text>`+"\n",
			num(l.X), num(l.Y), opts.Text, l.Pole)
	}

	pts := make([]string, 0, len(c.Vertices))
	for _, v := range c.Vertices {
		pts = append(pts, num(v.X)+","+num(v.Y))
	}
	fmt.Fprintf(&b, `  <polygon points="%s" fill="%s" fill-opacity="0.2" stroke="%s" stroke-width="2"/>`+"\n",
		strings.Join(pts, " "), opts.Fill, opts.Fill)

	for _, v := range c.Vertices {
		fmt.Fprintf(&b, `  <circle cx="%s" cy="%s" r="3" fill="%s"/>`+"\n", num(v.X), num(v.Y), opts.Fill)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
