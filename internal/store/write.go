package store

import (
	"context"
	"fmt"

	"github.com/roach88/meetmap/internal/dataset"
)

// Load inserts a meeting history in a single transaction. Loading into a
// non-empty catalog fails on the first duplicate year or city.
func (s *Store) Load(ctx context.Context, ds *dataset.Dataset) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	cityStmt, err := tx.PrepareContext(ctx, `INSERT INTO cities (name, lat, lon) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare cities: %w", err)
	}
	defer cityStmt.Close()

	for _, c := range ds.Cities {
		if _, err := cityStmt.ExecContext(ctx, dataset.NormalizeName(c.Name), c.Lat, c.Lon); err != nil {
			return fmt.Errorf("insert city %q: %w", c.Name, err)
		}
	}

	meetingStmt, err := tx.PrepareContext(ctx, `INSERT INTO meetings (seq, year, city) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare meetings: %w", err)
	}
	defer meetingStmt.Close()

	for i, m := range ds.Meetings {
		if _, err := meetingStmt.ExecContext(ctx, i, m.Year, dataset.NormalizeName(m.City)); err != nil {
			return fmt.Errorf("insert meeting %d: %w", m.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load: %w", err)
	}
	return nil
}

// OpenDataset opens a catalog and loads ds into it.
func OpenDataset(ctx context.Context, ds *dataset.Dataset) (*Store, error) {
	s, err := Open(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Load(ctx, ds); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}
