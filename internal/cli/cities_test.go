package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/meetmap/internal/dataset"
	"github.com/roach88/meetmap/internal/testutil"
)

func TestCities_TextGolden(t *testing.T) {
	out, _, err := executeRoot(t, "", "cities")
	require.NoError(t, err)

	testutil.AssertGolden(t, "cities_text", []byte(out))
}

func TestCities_JSONGolden(t *testing.T) {
	out, _, err := executeRoot(t, "", "cities", "--json")
	require.NoError(t, err)

	testutil.AssertGolden(t, "cities_json", []byte(out))
}

func TestCities_UnmappedCity(t *testing.T) {
	ds := &dataset.Dataset{
		Meetings: []dataset.MeetingRecord{
			{Year: 2001, City: "Denver, Colorado"},
			{Year: 2002, City: "Nowhere, Nowhere"},
			{Year: 2003, City: "Denver, Colorado"},
		},
		Cities: []dataset.CityCoordinate{
			{Name: "Denver, Colorado", Lat: 39.7392, Lon: -104.9903},
		},
	}

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	opts := &CitiesOptions{RootOptions: &RootOptions{}}
	require.NoError(t, runCities(opts, ds, cmd))

	text := out.String()
	assert.Contains(t, text, "Denver, Colorado                  2   2001   2003\n")
	assert.Contains(t, text, "Nowhere, Nowhere                  1   2002   2002  (no coordinates)\n")
	assert.Contains(t, text, "2 cities, 3 meeting(s)")
}
