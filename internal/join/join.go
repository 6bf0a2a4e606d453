// Package join matches meeting records to host-city coordinates.
//
// The join is a linear scan in record order. A record whose city has no
// coordinates is dropped and reported on the diagnostic writer; it is never
// an error.
package join

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/roach88/meetmap/internal/dataset"
)

// Lookup resolves a city name to its coordinates.
//
// dataset.CoordinateTable and store.Catalog both implement Lookup.
type Lookup interface {
	Lookup(city string) (dataset.CityCoordinate, bool)
}

// PlotPoint is a meeting record joined with its city's coordinates.
type PlotPoint struct {
	Year int     `json:"year"`
	City string  `json:"city"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Point returns the location as an orb point (X is longitude).
func (p PlotPoint) Point() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

// Leg is the move from one meeting to the next in year order.
type Leg struct {
	From PlotPoint `json:"from"`
	To   PlotPoint `json:"to"`

	// DistanceKm is the great-circle distance between the two cities.
	DistanceKm float64 `json:"distance_km"`
}

// Result holds the joined points as four index-aligned sequences plus the
// same data as PlotPoints.
//
// Invariant: Lats, Lons, Years, Cities and Points always have equal length.
type Result struct {
	Lats   []float64
	Lons   []float64
	Years  []int
	Cities []string
	Points []PlotPoint

	// Missing lists the city of every dropped record, one entry per record.
	Missing []string
}

// Len returns the number of joined points.
func (r *Result) Len() int {
	return len(r.Points)
}

// Legs returns the chronological legs between consecutive points. Legs follow
// year order, not geographic proximity: leg i runs from point i to point i+1.
func (r *Result) Legs() []Leg {
	if len(r.Points) < 2 {
		return nil
	}
	legs := make([]Leg, 0, len(r.Points)-1)
	for i := 1; i < len(r.Points); i++ {
		from, to := r.Points[i-1], r.Points[i]
		legs = append(legs, Leg{
			From:       from,
			To:         to,
			DistanceKm: geo.DistanceHaversine(from.Point(), to.Point()) / 1000,
		})
	}
	return legs
}

// Join looks up every record's city and returns the matches in record order.
//
// For each record without coordinates, exactly one line
// "Coordinates for <city> not found." is written to diag (if non-nil) and
// the record is skipped. Join never fails and may return an empty result.
func Join(records []dataset.MeetingRecord, lookup Lookup, diag io.Writer) *Result {
	res := &Result{
		Lats:   make([]float64, 0, len(records)),
		Lons:   make([]float64, 0, len(records)),
		Years:  make([]int, 0, len(records)),
		Cities: make([]string, 0, len(records)),
		Points: make([]PlotPoint, 0, len(records)),
	}

	for _, rec := range records {
		coord, ok := lookup.Lookup(rec.City)
		if !ok {
			if diag != nil {
				fmt.Fprintf(diag, "Coordinates for %s not found.\n", rec.City)
			}
			slog.Debug("dropping meeting without coordinates", "year", rec.Year, "city", rec.City)
			res.Missing = append(res.Missing, rec.City)
			continue
		}

		res.Lats = append(res.Lats, coord.Lat)
		res.Lons = append(res.Lons, coord.Lon)
		res.Years = append(res.Years, rec.Year)
		res.Cities = append(res.Cities, rec.City)
		res.Points = append(res.Points, PlotPoint{
			Year: rec.Year,
			City: rec.City,
			Lat:  coord.Lat,
			Lon:  coord.Lon,
		})
	}

	return res
}
