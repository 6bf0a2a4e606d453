// Package projection implements the spherical Lambert conformal conic
// projection used for maps of the continental United States.
package projection

import "math"

// EarthRadius is the sphere radius in metres.
const EarthRadius = 6378137.0

// LambertConformal is a two-standard-parallel Lambert conformal conic
// projection on a sphere. Angles are in degrees; projected units are metres.
type LambertConformal struct {
	CentralLon float64
	CentralLat float64
	Parallel1  float64
	Parallel2  float64

	n, f, rho0 float64
}

// ContinentalUS returns the projection centred on the contiguous states with
// standard parallels 33° and 45°.
func ContinentalUS() *LambertConformal {
	return NewLambertConformal(-96, 39, 33, 45)
}

// NewLambertConformal precomputes the cone constants for the given centre and
// standard parallels. Equal parallels yield a tangent cone.
func NewLambertConformal(centralLon, centralLat, parallel1, parallel2 float64) *LambertConformal {
	p := &LambertConformal{
		CentralLon: centralLon,
		CentralLat: centralLat,
		Parallel1:  parallel1,
		Parallel2:  parallel2,
	}

	phi1, phi2, phi0 := radians(parallel1), radians(parallel2), radians(centralLat)
	if parallel1 == parallel2 {
		p.n = math.Sin(phi1)
	} else {
		p.n = math.Log(math.Cos(phi1)/math.Cos(phi2)) /
			math.Log(math.Tan(math.Pi/4+phi2/2)/math.Tan(math.Pi/4+phi1/2))
	}
	p.f = math.Cos(phi1) * math.Pow(math.Tan(math.Pi/4+phi1/2), p.n) / p.n
	p.rho0 = p.rho(phi0)
	return p
}

func (p *LambertConformal) rho(phi float64) float64 {
	return EarthRadius * p.f / math.Pow(math.Tan(math.Pi/4+phi/2), p.n)
}

// Forward projects a geographic coordinate to projected x, y.
func (p *LambertConformal) Forward(lon, lat float64) (x, y float64) {
	r := p.rho(radians(lat))
	theta := p.n * radians(normalizeLon(lon-p.CentralLon))
	return r * math.Sin(theta), p.rho0 - r*math.Cos(theta)
}

// Inverse maps projected x, y back to longitude and latitude.
func (p *LambertConformal) Inverse(x, y float64) (lon, lat float64) {
	dy := p.rho0 - y
	r := math.Copysign(math.Hypot(x, dy), p.n)
	if r == 0 {
		return p.CentralLon, math.Copysign(90, p.n)
	}
	theta := math.Atan2(math.Copysign(1, p.n)*x, math.Copysign(1, p.n)*dy)
	phi := 2*math.Atan(math.Pow(EarthRadius*p.f/r, 1/p.n)) - math.Pi/2
	return normalizeLon(degrees(theta/p.n) + p.CentralLon), degrees(phi)
}

// Bounds is an axis-aligned rectangle in projected space.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether x, y lies inside b, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// extentSamples is the number of points sampled along each edge of a
// geographic rectangle. Parallels project to arcs, so corners alone
// underestimate the extent.
const extentSamples = 64

// Extent returns the smallest projected rectangle containing the geographic
// rectangle [west, east] × [south, north].
func (p *LambertConformal) Extent(west, east, south, north float64) Bounds {
	b := Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	add := func(lon, lat float64) {
		x, y := p.Forward(lon, lat)
		b.MinX, b.MaxX = math.Min(b.MinX, x), math.Max(b.MaxX, x)
		b.MinY, b.MaxY = math.Min(b.MinY, y), math.Max(b.MaxY, y)
	}
	for i := 0; i <= extentSamples; i++ {
		t := float64(i) / extentSamples
		lon := west + t*(east-west)
		lat := south + t*(north-south)
		add(lon, south)
		add(lon, north)
		add(west, lat)
		add(east, lat)
	}
	if west <= p.CentralLon && p.CentralLon <= east {
		add(p.CentralLon, south)
		add(p.CentralLon, north)
	}
	return b
}

func normalizeLon(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
