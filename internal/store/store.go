// Package store handles SQLite persistence of dataset snapshots.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/cargodash/cargodash/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for shipment snapshots.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS shipments (
			id INTEGER PRIMARY KEY,
			carrier TEXT NOT NULL,
			region TEXT NOT NULL,
			status TEXT NOT NULL,
			priority TEXT NOT NULL,
			delivery_date TEXT NOT NULL,
			package_count INTEGER NOT NULL,
			weight REAL NOT NULL,
			cost REAL NOT NULL,
			distance REAL NOT NULL,
			delivery_time REAL NOT NULL,
			ts TEXT NOT NULL,
			created_date TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_shipments_delivery_date ON shipments(delivery_date);`,
		`CREATE INDEX IF NOT EXISTS idx_shipments_carrier ON shipments(carrier);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceRecords overwrites the snapshot with the given records.
func (s *Store) ReplaceRecords(ctx context.Context, records []model.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM shipments`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO shipments (id, carrier, region, status, priority, delivery_date, package_count, weight, cost, distance, delivery_time, ts, created_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for _, r := range records {
		if _, err = stmt.ExecContext(ctx,
			r.ID, r.Carrier, r.Region, r.Status, r.Priority,
			r.DeliveryDate, r.PackageCount, r.Weight, r.Cost,
			r.Distance, r.DeliveryTime,
			r.Timestamp.Format(time.RFC3339Nano), r.CreatedDate,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListRecords loads the full snapshot ordered by shipment id.
func (s *Store) ListRecords(ctx context.Context) ([]model.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, carrier, region, status, priority, delivery_date, package_count, weight, cost, distance, delivery_time, ts, created_date
		 FROM shipments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.Record
	for rows.Next() {
		var r model.Record
		var ts string
		if err := rows.Scan(
			&r.ID, &r.Carrier, &r.Region, &r.Status, &r.Priority,
			&r.DeliveryDate, &r.PackageCount, &r.Weight, &r.Cost,
			&r.Distance, &r.DeliveryTime, &ts, &r.CreatedDate,
		); err != nil {
			return nil, err
		}
		if parsed, perr := time.Parse(time.RFC3339Nano, ts); perr == nil {
			r.Timestamp = parsed
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Count returns the snapshot size without loading it.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shipments`).Scan(&n)
	return n, err
}
