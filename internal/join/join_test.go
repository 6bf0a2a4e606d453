package join

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/meetmap/internal/dataset"
)

func joinDefault(t *testing.T) (*Result, string) {
	t.Helper()
	ds := dataset.Default()
	var diag bytes.Buffer
	return Join(ds.Meetings, ds.Table(), &diag), diag.String()
}

func assertAligned(t *testing.T, res *Result) {
	t.Helper()
	n := len(res.Points)
	assert.Len(t, res.Lats, n)
	assert.Len(t, res.Lons, n)
	assert.Len(t, res.Years, n)
	assert.Len(t, res.Cities, n)
	for i, p := range res.Points {
		assert.Equal(t, p.Lat, res.Lats[i])
		assert.Equal(t, p.Lon, res.Lons[i])
		assert.Equal(t, p.Year, res.Years[i])
		assert.Equal(t, p.City, res.Cities[i])
	}
}

func TestJoin_DefaultDataset(t *testing.T) {
	res, diag := joinDefault(t)

	assert.Equal(t, 25, res.Len())
	assert.Empty(t, res.Missing)
	assert.Empty(t, diag)
	assertAligned(t, res)
}

func TestJoin_FirstPointIsLongBeach(t *testing.T) {
	res, _ := joinDefault(t)

	require.NotEmpty(t, res.Points)
	assert.Equal(t, PlotPoint{
		Year: 1999,
		City: "Long Beach, California",
		Lat:  33.7701,
		Lon:  -118.1937,
	}, res.Points[0])
}

func TestJoin_PreservesYearOrder(t *testing.T) {
	res, _ := joinDefault(t)

	ds := dataset.Default()
	for i, rec := range ds.Meetings {
		assert.Equal(t, rec.Year, res.Years[i])
		assert.Equal(t, rec.City, res.Cities[i])
	}
}

func TestJoin_Idempotent(t *testing.T) {
	first, _ := joinDefault(t)
	second, _ := joinDefault(t)

	assert.Equal(t, first, second)
}

func TestJoin_MissingCityIsDropped(t *testing.T) {
	ds := dataset.Default()
	before := Join(ds.Meetings, ds.Table(), nil)

	records := append(append([]dataset.MeetingRecord{}, ds.Meetings...),
		dataset.MeetingRecord{Year: 2025, City: "Nowhere, Nowhere"})

	var diag bytes.Buffer
	after := Join(records, ds.Table(), &diag)

	assert.Equal(t, "Coordinates for Nowhere, Nowhere not found.\n", diag.String())
	assert.Equal(t, before.Len(), after.Len())
	assert.Equal(t, []string{"Nowhere, Nowhere"}, after.Missing)
	assertAligned(t, after)
}

func TestJoin_OneDiagnosticPerMissingRecord(t *testing.T) {
	table := dataset.NewCoordinateTable([]dataset.CityCoordinate{
		{Name: "Denver, Colorado", Lat: 39.7392, Lon: -104.9903},
	})
	records := []dataset.MeetingRecord{
		{Year: 2001, City: "Atlantis"},
		{Year: 2002, City: "Denver, Colorado"},
		{Year: 2003, City: "Atlantis"},
		{Year: 2004, City: "El Dorado"},
	}

	var diag bytes.Buffer
	res := Join(records, table, &diag)

	lines := strings.Split(strings.TrimSuffix(diag.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"Coordinates for Atlantis not found.",
		"Coordinates for Atlantis not found.",
		"Coordinates for El Dorado not found.",
	}, lines)
	assert.Equal(t, []int{2002}, res.Years)
	assert.Len(t, res.Missing, 3)
}

func TestJoin_Empty(t *testing.T) {
	res := Join(nil, dataset.CoordinateTable{}, nil)

	assert.Zero(t, res.Len())
	assert.Empty(t, res.Legs())
	assertAligned(t, res)
}

func TestLegs_Chronological(t *testing.T) {
	res, _ := joinDefault(t)
	legs := res.Legs()

	require.Len(t, legs, 24)
	assert.Equal(t, 1999, legs[0].From.Year)
	assert.Equal(t, 2000, legs[0].To.Year)

	// 2019 Chicago is followed by 2021 Philadelphia across the virtual year.
	assert.Equal(t, "Chicago, Illinois", legs[20].From.City)
	assert.Equal(t, "Philadelphia, Pennsylvania", legs[20].To.City)
}

func TestLegs_Distance(t *testing.T) {
	res, _ := joinDefault(t)
	legs := res.Legs()

	// Long Beach to Nashville is roughly 2,865 km.
	assert.InDelta(t, 2865, legs[0].DistanceKm, 40)

	// Orlando 2005 to Dallas 2006 is roughly 1,550 km.
	assert.InDelta(t, 1550, legs[6].DistanceKm, 40)
}
