package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed meetings.yaml
var meetingsYAML []byte

var loadDefault = sync.OnceValues(func() (*Dataset, error) {
	return Parse(meetingsYAML)
})

// Default returns the embedded meeting history.
//
// The result is shared; callers must not modify it. Default panics if the
// embedded tables fail validation, which the package tests rule out.
func Default() *Dataset {
	ds, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("dataset: embedded meeting history is invalid: %v", err))
	}
	return ds
}

// Parse decodes a YAML meeting history and validates it.
// City names are NFC-normalized so that lookups do not depend on how a name
// was typed.
func Parse(data []byte) (*Dataset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decoding meeting history: %w", err)
	}

	for i := range ds.Meetings {
		ds.Meetings[i].City = NormalizeName(ds.Meetings[i].City)
	}
	for i := range ds.Cities {
		ds.Cities[i].Name = NormalizeName(ds.Cities[i].Name)
	}

	if err := Validate(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// NormalizeName returns the canonical form of a city name used as a lookup key.
func NormalizeName(name string) string {
	return norm.NFC.String(name)
}

// CoordinateTable maps normalized city names to coordinates.
type CoordinateTable map[string]CityCoordinate

// NewCoordinateTable indexes cities by name. Later entries win on duplicates;
// Validate rejects duplicates before a table is built from a parsed dataset.
func NewCoordinateTable(cities []CityCoordinate) CoordinateTable {
	t := make(CoordinateTable, len(cities))
	for _, c := range cities {
		t[NormalizeName(c.Name)] = c
	}
	return t
}

// Lookup returns the coordinates of the named city.
func (t CoordinateTable) Lookup(name string) (CityCoordinate, bool) {
	c, ok := t[NormalizeName(name)]
	return c, ok
}

// Table returns a coordinate table built from the dataset's cities.
func (d *Dataset) Table() CoordinateTable {
	return NewCoordinateTable(d.Cities)
}

// Unmapped returns the cities named by meeting records that have no
// coordinates, in first-seen order without repeats.
func (d *Dataset) Unmapped() []string {
	table := d.Table()
	seen := make(map[string]bool)
	var missing []string
	for _, m := range d.Meetings {
		if _, ok := table.Lookup(m.City); ok || seen[m.City] {
			continue
		}
		seen[m.City] = true
		missing = append(missing, m.City)
	}
	return missing
}
