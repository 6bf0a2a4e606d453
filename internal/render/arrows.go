package render

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Segment is one arrow in data coordinates.
type Segment struct {
	From, To plotter.XY
}

// Arrows is a plotter drawing a straight arrow with an open head for each
// segment. Zero-length segments draw nothing.
type Arrows struct {
	Segments []Segment
	draw.LineStyle

	// HeadLength is the length of each barb of the arrow head.
	HeadLength vg.Length

	// HeadAngle is the angle between each barb and the shaft, in radians.
	HeadAngle float64
}

var _ plot.Plotter = (*Arrows)(nil)

// Plot implements plot.Plotter.
func (a *Arrows) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, s := range a.Segments {
		x0, y0 := trX(s.From.X), trY(s.From.Y)
		x1, y1 := trX(s.To.X), trY(s.To.Y)
		if x0 == x1 && y0 == y1 {
			continue
		}
		c.StrokeLine2(a.LineStyle, x0, y0, x1, y1)

		back := math.Atan2(float64(y0-y1), float64(x0-x1))
		for _, side := range []float64{-1, 1} {
			theta := back + side*a.HeadAngle
			hx := x1 + vg.Length(math.Cos(theta))*a.HeadLength
			hy := y1 + vg.Length(math.Sin(theta))*a.HeadLength
			c.StrokeLine2(a.LineStyle, x1, y1, hx, hy)
		}
	}
}
