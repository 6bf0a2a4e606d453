package dataset

import "fmt"

// MeetingRecord is one in-person annual meeting.
type MeetingRecord struct {
	Year int    `yaml:"year" json:"year"`
	City string `yaml:"city" json:"city"`
}

// CityCoordinate locates a host city.
type CityCoordinate struct {
	Name string  `yaml:"name" json:"name"`
	Lat  float64 `yaml:"lat" json:"lat"`
	Lon  float64 `yaml:"lon" json:"lon"`
}

// Dataset is the complete meeting history: the map title, the meeting
// records in year order and the coordinate table.
type Dataset struct {
	Title    string           `yaml:"title" json:"title"`
	Meetings []MeetingRecord  `yaml:"meetings" json:"meetings"`
	Cities   []CityCoordinate `yaml:"cities" json:"cities"`
}

// Span returns the first and last meeting years, or zeros for an empty history.
func (d *Dataset) Span() (first, last int) {
	if len(d.Meetings) == 0 {
		return 0, 0
	}
	return d.Meetings[0].Year, d.Meetings[len(d.Meetings)-1].Year
}

// ValidationError reports a dataset that violates its schema or ordering rules.
type ValidationError struct {
	// Field is the offending path, e.g. "meetings[3].year".
	Field string

	// Message describes the violation.
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
