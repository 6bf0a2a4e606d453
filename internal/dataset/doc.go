// Package dataset holds the static Educause meeting history.
//
// The history is two hand-written tables embedded in the binary:
//
//   - meetings: one (year, city) record per in-person annual meeting, in year
//     order. 2020 has no record because that meeting was virtual.
//   - cities: the latitude and longitude of every host city, keyed by name.
//
// The tables are decoded from meetings.yaml at first use and checked against
// schema.cue before anything else sees them. They are never read from disk.
package dataset
