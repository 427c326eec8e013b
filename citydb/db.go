package citydb

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/citysearch/city"
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/loader"
)

// DB wraps a SQLite database connection.
type DB struct {
	sql *sql.DB
}

var _ loader.Source = (*DB)(nil)

// Open opens (or creates) the SQLite database at path and runs migrations.
// Use ":memory:" for a throwaway database.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One connection keeps ":memory:" databases shared across queries.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	d := &DB{sql: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

// SqlDB returns the underlying *sql.DB.
func (d *DB) SqlDB() *sql.DB {
	return d.sql
}

func (d *DB) migrate() error {
	version := 0
	// Missing table on a fresh database leaves version at 0.
	_ = d.sql.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := d.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS cities (
				id        INTEGER PRIMARY KEY,
				name      TEXT NOT NULL UNIQUE,
				region    TEXT NOT NULL DEFAULT '',
				latitude  REAL NOT NULL,
				longitude REAL NOT NULL
			);

			CREATE TABLE IF NOT EXISTS edges (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				a  TEXT NOT NULL,
				b  TEXT NOT NULL
			);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// Cities returns every city row in id order.
func (d *DB) Cities(ctx context.Context) ([]city.City, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT name, region, latitude, longitude FROM cities ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query cities: %w", err)
	}
	defer rows.Close()

	var out []city.City
	for rows.Next() {
		var c city.City
		if err := rows.Scan(&c.Name, &c.Region, &c.Latitude, &c.Longitude); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

// Edges returns every edge row in id order. EdgeRecord.Line carries the row id.
func (d *DB) Edges(ctx context.Context) ([]loader.EdgeRecord, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT id, a, b FROM edges ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query edges: %w", err)
	}
	defer rows.Close()

	var out []loader.EdgeRecord
	for rows.Next() {
		var e loader.EdgeRecord
		if err := rows.Scan(&e.Line, &e.A, &e.B); err != nil {
			return nil, fmt.Errorf("scan edge: %w", err)
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// Load reads both tables and builds the graph.
func (d *DB) Load(ctx context.Context) (*core.Graph, error) {
	cities, err := d.Cities(ctx)
	if err != nil {
		return nil, err
	}
	edges, err := d.Edges(ctx)
	if err != nil {
		return nil, err
	}

	g, err := loader.Build(cities, edges)
	if err != nil {
		return nil, fmt.Errorf("citydb: %w", err)
	}

	return g, nil
}
