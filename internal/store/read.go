package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/roach88/meetmap/internal/dataset"
)

// HostStat summarizes how often one city hosted the meeting.
type HostStat struct {
	City      string `json:"city"`
	Count     int    `json:"count"`
	FirstYear int    `json:"first_year"`
	LastYear  int    `json:"last_year"`

	// Mapped reports whether the city has coordinates.
	Mapped bool `json:"mapped"`
}

// Lookup returns the coordinates of the named city. It satisfies join.Lookup,
// so query failures are logged and reported as not found.
func (s *Store) Lookup(city string) (dataset.CityCoordinate, bool) {
	c, err := s.City(context.Background(), city)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("city lookup failed", "city", city, "error", err)
		}
		return dataset.CityCoordinate{}, false
	}
	return c, true
}

// City returns one coordinate entry, or sql.ErrNoRows.
func (s *Store) City(ctx context.Context, name string) (dataset.CityCoordinate, error) {
	var c dataset.CityCoordinate
	err := s.db.QueryRowContext(ctx, `
		SELECT name, lat, lon FROM cities WHERE name = ?
	`, dataset.NormalizeName(name)).Scan(&c.Name, &c.Lat, &c.Lon)
	if err != nil {
		return dataset.CityCoordinate{}, fmt.Errorf("query city %q: %w", name, err)
	}
	return c, nil
}

// Meetings returns every meeting record in dataset order.
//
// Returns an empty slice (not nil) for an empty catalog.
func (s *Store) Meetings(ctx context.Context) ([]dataset.MeetingRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT year, city FROM meetings ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query meetings: %w", err)
	}
	defer rows.Close()

	meetings := []dataset.MeetingRecord{}
	for rows.Next() {
		var m dataset.MeetingRecord
		if err := rows.Scan(&m.Year, &m.City); err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meetings: %w", err)
	}
	return meetings, nil
}

// HostStats returns one row per host city, most frequent first. Ties are
// broken by first year, then name.
//
// Returns an empty slice (not nil) for an empty catalog.
func (s *Store) HostStats(ctx context.Context) ([]HostStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.city, COUNT(*), MIN(m.year), MAX(m.year), c.name IS NOT NULL
		FROM meetings m
		LEFT JOIN cities c ON c.name = m.city
		GROUP BY m.city
		ORDER BY COUNT(*) DESC, MIN(m.year) ASC, m.city COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query host stats: %w", err)
	}
	defer rows.Close()

	stats := []HostStat{}
	for rows.Next() {
		var st HostStat
		if err := rows.Scan(&st.City, &st.Count, &st.FirstYear, &st.LastYear, &st.Mapped); err != nil {
			return nil, fmt.Errorf("scan host stat: %w", err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate host stats: %w", err)
	}
	return stats, nil
}
