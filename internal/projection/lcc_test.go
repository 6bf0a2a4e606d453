package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForward_CentreIsOrigin(t *testing.T) {
	p := ContinentalUS()

	x, y := p.Forward(-96, 39)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
}

func TestForward_Orientation(t *testing.T) {
	p := ContinentalUS()

	westX, _ := p.Forward(-118, 39)
	eastX, _ := p.Forward(-75, 39)
	assert.Less(t, westX, 0.0)
	assert.Greater(t, eastX, 0.0)

	_, southY := p.Forward(-96, 30)
	_, northY := p.Forward(-96, 45)
	assert.Less(t, southY, northY)
}

func TestForward_SymmetricAboutCentralMeridian(t *testing.T) {
	p := ContinentalUS()

	wx, wy := p.Forward(-106, 40)
	ex, ey := p.Forward(-86, 40)
	assert.InDelta(t, -wx, ex, 1e-6)
	assert.InDelta(t, wy, ey, 1e-6)
}

func TestInverse_RoundTrip(t *testing.T) {
	p := ContinentalUS()

	cases := [][2]float64{
		{-118.1937, 33.7701},
		{-75.1652, 39.9526},
		{-122.3321, 47.6062},
		{-81.3792, 28.5383},
		{-125, 20},
		{-66.5, 50},
	}
	for _, c := range cases {
		x, y := p.Forward(c[0], c[1])
		lon, lat := p.Inverse(x, y)
		assert.InDelta(t, c[0], lon, 1e-9)
		assert.InDelta(t, c[1], lat, 1e-9)
	}
}

func TestForward_ScaleIsTrueOnStandardParallels(t *testing.T) {
	p := ContinentalUS()

	// One degree of longitude along a standard parallel keeps its true
	// length, about 111.32 km * cos(lat).
	for _, lat := range []float64{33, 45} {
		x0, y0 := p.Forward(-96.5, lat)
		x1, y1 := p.Forward(-95.5, lat)
		dx, dy := x1-x0, y1-y0
		chord := dx*dx + dy*dy
		want := EarthRadius * radians(1) * cosDeg(lat)
		assert.InEpsilon(t, want*want, chord, 1e-3, "lat %v", lat)
	}
}

func TestExtent_ContainsCorners(t *testing.T) {
	p := ContinentalUS()
	b := p.Extent(-125, -66.5, 20, 50)

	for _, c := range [][2]float64{{-125, 20}, {-66.5, 20}, {-125, 50}, {-66.5, 50}, {-96, 50}, {-96, 20}} {
		x, y := p.Forward(c[0], c[1])
		assert.True(t, b.Contains(x, y), "corner %v outside %+v", c, b)
	}
	assert.Greater(t, b.Width(), b.Height())
}

func TestExtent_BottomIsCentralMeridian(t *testing.T) {
	p := ContinentalUS()
	b := p.Extent(-125, -66.5, 20, 50)

	// The southern parallel bows downward, so its lowest point is on the
	// central meridian rather than at a corner.
	_, y := p.Forward(-96, 20)
	assert.InDelta(t, y, b.MinY, 1e-6)
}

func cosDeg(deg float64) float64 {
	return math.Cos(radians(deg))
}
