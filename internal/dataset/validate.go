package dataset

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaCUE string

// Validate checks a dataset against the embedded CUE schema and then enforces
// the ordering rules CUE cannot express: meeting years strictly increase and
// city names are unique.
//
// A meeting whose city has no coordinates is not a validation error; the
// join drops it with a diagnostic.
func Validate(ds *Dataset) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling dataset schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Dataset"))
	if !def.Exists() {
		return fmt.Errorf("dataset schema has no #Dataset definition")
	}

	// Absent tables encode as null, which the list constraints reject.
	enc := *ds
	if enc.Meetings == nil {
		enc.Meetings = []MeetingRecord{}
	}
	if enc.Cities == nil {
		enc.Cities = []CityCoordinate{}
	}

	value := ctx.Encode(enc)
	if err := value.Err(); err != nil {
		return &ValidationError{Message: fmt.Sprintf("encoding dataset: %v", err)}
	}
	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return &ValidationError{Field: "schema", Message: err.Error()}
	}

	for i := 1; i < len(ds.Meetings); i++ {
		prev, cur := ds.Meetings[i-1].Year, ds.Meetings[i].Year
		if cur <= prev {
			return &ValidationError{
				Field:   fmt.Sprintf("meetings[%d].year", i),
				Message: fmt.Sprintf("year %d does not follow %d", cur, prev),
			}
		}
	}

	names := make(map[string]int, len(ds.Cities))
	for i, c := range ds.Cities {
		key := NormalizeName(c.Name)
		if j, dup := names[key]; dup {
			return &ValidationError{
				Field:   fmt.Sprintf("cities[%d].name", i),
				Message: fmt.Sprintf("%q already defined at cities[%d]", c.Name, j),
			}
		}
		names[key] = i
	}

	return nil
}
