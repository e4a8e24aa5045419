// Package store persists named station networks in PostgreSQL so they can be
// rebuilt and queried later. Edges keep their input position, which preserves
// last-write-wins for duplicate pairs when a network is loaded back.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/katalvlaran/stationtime/traveltime"
)

var (
	// ErrNetworkNotFound is returned when no network has the requested name.
	ErrNetworkNotFound = errors.New("store: network not found")

	// ErrInvalidName is returned for an empty network name.
	ErrInvalidName = errors.New("store: network name must not be empty")
)

// schema is applied by Migrate; statements are idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS networks (
	name          TEXT PRIMARY KEY,
	station_count INTEGER NOT NULL CHECK (station_count >= 0),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS network_edges (
	network     TEXT    NOT NULL REFERENCES networks(name) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	station_a   INTEGER NOT NULL,
	station_b   INTEGER NOT NULL,
	travel_time INTEGER NOT NULL CHECK (travel_time > 0),
	PRIMARY KEY (network, position)
);`

// Store is a PostgreSQL-backed network repository.
type Store struct {
	db *sql.DB
}

// New wraps an open database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects with lib/pq and pings until the database answers or attempts
// run out.
func Open(ctx context.Context, dsn string, attempts int, wait time.Duration) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		if err = db.PingContext(ctx); err == nil {
			log.Println("Successfully connected to database")
			return New(db), nil
		}
		log.Printf("Failed to connect to database (attempt %d/%d): %v", i+1, attempts, err)
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	db.Close()

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Migrate creates the tables when missing.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}
	return nil
}

// SaveNetwork replaces the network called name with req.
func (s *Store) SaveNetwork(ctx context.Context, name string, req traveltime.BuildRequest) (err error) {
	if name == "" {
		return ErrInvalidName
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO networks (name, station_count) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET station_count = EXCLUDED.station_count, updated_at = now()`,
		name, req.StationCount); err != nil {
		return fmt.Errorf("store: save network %q: %w", name, err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM network_edges WHERE network = $1`, name); err != nil {
		return fmt.Errorf("store: clear edges of %q: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO network_edges (network, position, station_a, station_b, travel_time)
		VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return fmt.Errorf("store: prepare edges: %w", err)
	}
	defer stmt.Close()
	for i, e := range req.Edges {
		if _, err = stmt.ExecContext(ctx, name, i, e.A, e.B, e.Time); err != nil {
			return fmt.Errorf("store: edge %d of %q: %w", i, name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: commit %q: %w", name, err)
	}
	return nil
}

// LoadNetwork returns the stored request for name with edges in input order.
func (s *Store) LoadNetwork(ctx context.Context, name string) (traveltime.BuildRequest, error) {
	var req traveltime.BuildRequest
	if name == "" {
		return req, ErrInvalidName
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT station_count FROM networks WHERE name = $1`, name).Scan(&req.StationCount)
	if errors.Is(err, sql.ErrNoRows) {
		return req, fmt.Errorf("%w: %q", ErrNetworkNotFound, name)
	}
	if err != nil {
		return req, fmt.Errorf("store: load network %q: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT station_a, station_b, travel_time FROM network_edges
		WHERE network = $1 ORDER BY position`, name)
	if err != nil {
		return req, fmt.Errorf("store: load edges of %q: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var e traveltime.Edge
		if err := rows.Scan(&e.A, &e.B, &e.Time); err != nil {
			return req, fmt.Errorf("store: scan edge of %q: %w", name, err)
		}
		req.Edges = append(req.Edges, e)
	}
	if err := rows.Err(); err != nil {
		return req, fmt.Errorf("store: iterate edges of %q: %w", name, err)
	}

	return req, nil
}

// ListNetworks returns stored network names in ascending order.
func (s *Store) ListNetworks(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM networks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: list networks: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("store: scan network name: %w", err)
		}
		names = append(names, n)
	}

	return names, rows.Err()
}
