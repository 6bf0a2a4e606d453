package render

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/paulmach/orb"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/roach88/meetmap/internal/basemap"
	"github.com/roach88/meetmap/internal/join"
	"github.com/roach88/meetmap/internal/projection"
)

// Geographic extent of the map, in degrees.
const (
	ExtentWest  = -125.0
	ExtentEast  = -66.5
	ExtentSouth = 20.0
	ExtentNorth = 50.0
)

// LabelOffset is the distance, in degrees of latitude and of longitude,
// between a marker and the lower-left corner of its label.
const LabelOffset = 0.5

// Palette follows the Natural Earth look of the land and ocean fills.
var (
	LandColor   = color.NRGBA{R: 0xef, G: 0xef, B: 0xdb, A: 0xff}
	OceanColor  = color.NRGBA{R: 0x97, G: 0xb6, B: 0xe1, A: 0xff}
	LakeColor   = color.NRGBA{R: 0x97, G: 0xb6, B: 0xe1, A: 0x80}
	RiverColor  = OceanColor
	BorderColor = color.Black
	CoastColor  = color.Black
	MarkerColor = color.NRGBA{R: 0xff, A: 0xff}
	ArrowColor  = color.NRGBA{B: 0xff, A: 0xff}
)

// Options configures a Map. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length

	// Projection defaults to projection.ContinentalUS.
	Projection *projection.LambertConformal

	// Basemap defaults to the embedded features.
	Basemap *basemap.Basemap
}

// DefaultOptions returns a 15 x 10 inch landscape map with the given title.
func DefaultOptions(title string) Options {
	return Options{
		Title:  title,
		Width:  15 * vg.Inch,
		Height: 10 * vg.Inch,
	}
}

// Map is a rendered meeting map ready to be encoded.
type Map struct {
	Plot   *plot.Plot
	Width  vg.Length
	Height vg.Length

	// Markers, Labels and Arrows count what was drawn.
	Markers int
	Labels  int
	Arrows  int
}

// New draws the joined meetings onto a fresh map. An empty result yields a
// map with base layers and title only.
func New(res *join.Result, opts Options) (*Map, error) {
	proj := opts.Projection
	if proj == nil {
		proj = projection.ContinentalUS()
	}
	bm := opts.Basemap
	if bm == nil {
		var err error
		if bm, err = basemap.Load(); err != nil {
			return nil, err
		}
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.HideAxes()
	p.X.Padding, p.Y.Padding = 0, 0
	p.BackgroundColor = color.White

	if err := addBaseLayers(p, proj, bm); err != nil {
		return nil, err
	}

	m := &Map{Plot: p, Width: opts.Width, Height: opts.Height}
	if err := m.addMeetings(proj, res); err != nil {
		return nil, err
	}

	// Fixed after all layers are added, since Add widens the axes to each
	// plotter's data range.
	ext := proj.Extent(ExtentWest, ExtentEast, ExtentSouth, ExtentNorth)
	ext = fitAspect(ext, float64(opts.Width), float64(opts.Height))
	p.X.Min, p.X.Max = ext.MinX, ext.MaxX
	p.Y.Min, p.Y.Max = ext.MinY, ext.MaxY

	slog.Debug("map drawn",
		"markers", m.Markers,
		"labels", m.Labels,
		"arrows", m.Arrows,
	)
	return m, nil
}

func addBaseLayers(p *plot.Plot, proj *projection.LambertConformal, bm *basemap.Basemap) error {
	fills := []struct {
		polys []orb.Polygon
		color color.Color
	}{
		{bm.Land, LandColor},
		{bm.Ocean, OceanColor},
	}
	for _, f := range fills {
		if err := addPolygons(p, proj, f.polys, f.color); err != nil {
			return err
		}
	}

	border := draw.LineStyle{
		Color:  BorderColor,
		Width:  vg.Points(0.75),
		Dashes: []vg.Length{vg.Points(1), vg.Points(1.5)},
	}
	if err := addLines(p, proj, bm.Borders, border); err != nil {
		return err
	}

	if err := addPolygons(p, proj, bm.Lakes, LakeColor); err != nil {
		return err
	}

	river := draw.LineStyle{Color: RiverColor, Width: vg.Points(1)}
	if err := addLines(p, proj, bm.Rivers, river); err != nil {
		return err
	}

	coast := draw.LineStyle{Color: CoastColor, Width: vg.Points(0.75)}
	return addLines(p, proj, bm.Coastlines(), coast)
}

func addPolygons(p *plot.Plot, proj *projection.LambertConformal, polys []orb.Polygon, fill color.Color) error {
	for _, poly := range polys {
		rings := make([]plotter.XYer, 0, len(poly))
		for _, r := range poly {
			rings = append(rings, projectAll(proj, r))
		}
		pg, err := plotter.NewPolygon(rings...)
		if err != nil {
			return fmt.Errorf("building polygon layer: %w", err)
		}
		pg.Color = fill
		pg.LineStyle.Width = 0
		p.Add(pg)
	}
	return nil
}

func addLines(p *plot.Plot, proj *projection.LambertConformal, lines []orb.LineString, style draw.LineStyle) error {
	for _, ls := range lines {
		l, err := plotter.NewLine(projectAll(proj, ls))
		if err != nil {
			return fmt.Errorf("building line layer: %w", err)
		}
		l.LineStyle = style
		p.Add(l)
	}
	return nil
}

func (m *Map) addMeetings(proj *projection.LambertConformal, res *join.Result) error {
	n := len(res.Lats)
	if n == 0 {
		return nil
	}

	markers := make(plotter.XYs, n)
	labelXYs := make(plotter.XYs, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		markers[i].X, markers[i].Y = proj.Forward(res.Lons[i], res.Lats[i])
		labelXYs[i].X, labelXYs[i].Y = proj.Forward(res.Lons[i]+LabelOffset, res.Lats[i]+LabelOffset)
		labels[i] = Label(res.Years[i], res.Cities[i])
	}

	sc, err := plotter.NewScatter(markers)
	if err != nil {
		return fmt.Errorf("building markers: %w", err)
	}
	sc.GlyphStyle = draw.GlyphStyle{
		Color:  MarkerColor,
		Radius: vg.Points(2.5),
		Shape:  draw.CircleGlyph{},
	}

	lb, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labels})
	if err != nil {
		return fmt.Errorf("building labels: %w", err)
	}

	arrows := &Arrows{
		LineStyle:  draw.LineStyle{Color: ArrowColor, Width: vg.Points(1)},
		HeadLength: vg.Points(6),
		HeadAngle:  math.Pi / 8,
	}
	for i := 1; i < n; i++ {
		arrows.Segments = append(arrows.Segments, Segment{From: markers[i-1], To: markers[i]})
	}

	m.Plot.Add(sc, lb, arrows)
	m.Markers = n
	m.Labels = n
	m.Arrows = len(arrows.Segments)
	return nil
}

// Label formats the text drawn next to a marker.
func Label(year int, city string) string {
	return fmt.Sprintf("%d: %s", year, city)
}

func projectAll(proj *projection.LambertConformal, pts []orb.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X, xys[i].Y = proj.Forward(pt.Lon(), pt.Lat())
	}
	return xys
}

// fitAspect grows b about its centre so that one projected metre spans the
// same length on both axes of a w x h canvas.
func fitAspect(b projection.Bounds, w, h float64) projection.Bounds {
	if w <= 0 || h <= 0 || b.Width() <= 0 || b.Height() <= 0 {
		return b
	}
	want := w / h
	have := b.Width() / b.Height()
	switch {
	case have > want:
		grow := (b.Width()/want - b.Height()) / 2
		b.MinY -= grow
		b.MaxY += grow
	case have < want:
		grow := (b.Height()*want - b.Width()) / 2
		b.MinX -= grow
		b.MaxX += grow
	}
	return b
}

// Encode writes the map in the given format.
func (m *Map) Encode(w io.Writer, f Format) (int64, error) {
	wt, err := m.Plot.WriterTo(m.Width, m.Height, string(f))
	if err != nil {
		return 0, fmt.Errorf("encoding %s: %w", f, err)
	}
	n, err := wt.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("encoding %s: %w", f, err)
	}
	return n, nil
}

// Save writes the map to path, replacing any existing file. A partially
// written file is removed on failure.
func (m *Map) Save(path string, f Format) (err error) {
	if _, err := ParseFormat(string(f)); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if _, err := m.Encode(file, f); err != nil {
		return err
	}
	return nil
}
