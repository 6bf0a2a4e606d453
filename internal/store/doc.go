// Package store loads the meeting history into an in-memory SQLite catalog.
//
// The catalog answers the aggregate questions the command line asks (how
// often each city hosted, first and last year) and can back the join as a
// coordinate lookup. Nothing is written to disk: every Store lives in a
// private ":memory:" database and disappears when closed.
//
// # Tables
//
//   - cities(name, lat, lon): one row per coordinate entry, keyed by name.
//   - meetings(seq, year, city): one row per meeting record. seq preserves
//     the dataset order; city is deliberately not a foreign key.
//
// # Deterministic Query Results
//
// Every multi-row query has a total ORDER BY so repeated runs print
// identical output.
package store
