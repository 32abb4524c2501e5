package mbtiles

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // import sqlite3 driver
	"github.com/paulmach/orb/maptile"
	log "github.com/sirupsen/logrus"

	"tilesvg/internal/tile"
)

// ErrNotFound is returned when the store has no tile for the requested key.
var ErrNotFound = errors.New("mbtiles: tile not found")

// Store is an MBTiles SQLite archive.
type Store struct {
	db   *sql.DB
	path string
}

// dsn builds a SQLite URI for path. The path is made absolute, since a
// relative one would be read as the URI authority, and escaped so that ?
// and # in file names are not read as the query or fragment.
func dsn(path, mode string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path), RawQuery: url.Values{"mode": {mode}}.Encode()}
	return u.String()
}

// Open opens an existing archive read-only.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn(path, "ro"))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Store{db: db, path: path}, nil
}

// Create opens path for writing, creating the tiles and metadata tables
// when they do not exist yet.
func Create(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn(path, "rwc"))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	stmts := []string{
		"PRAGMA synchronous=0",
		"PRAGMA journal_mode=DELETE",
		"create table if not exists tiles (zoom_level integer, tile_column integer, tile_row integer, tile_data blob);",
		"create table if not exists metadata (name text, value text);",
		"create unique index if not exists name on metadata (name);",
		"create unique index if not exists tile_index on tiles (zoom_level, tile_column, tile_row);",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
	}
	return &Store{db: db, path: path}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the file the store was opened from.
func (s *Store) Path() string {
	return s.path
}

// ReadTile returns the blob stored for t. The row is looked up exactly as
// given; see FlipY for archives addressed in XYZ order.
func (s *Store) ReadTile(t maptile.Tile) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(
		"SELECT tile_data FROM tiles WHERE zoom_level=? AND tile_column=? AND tile_row=?",
		int(t.Z), int(t.X), int(t.Y),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d/%d/%d", ErrNotFound, t.Z, t.X, t.Y)
	}
	if err != nil {
		return nil, fmt.Errorf("read tile %d/%d/%d: %w", t.Z, t.X, t.Y, err)
	}
	log.WithFields(log.Fields{"z": t.Z, "x": t.X, "y": t.Y, "bytes": len(data)}).Debug("read tile")
	return data, nil
}

// WriteTile stores data under t, replacing any previous blob.
func (s *Store) WriteTile(t maptile.Tile, data []byte) error {
	_, err := s.db.Exec(
		"insert or replace into tiles (zoom_level, tile_column, tile_row, tile_data) values (?, ?, ?, ?);",
		int(t.Z), int(t.X), int(t.Y), data,
	)
	if err != nil {
		return fmt.Errorf("write tile %d/%d/%d: %w", t.Z, t.X, t.Y, err)
	}
	return nil
}

// SetMetadata upserts one metadata entry.
func (s *Store) SetMetadata(name, value string) error {
	_, err := s.db.Exec("insert or replace into metadata (name, value) values (?, ?);", name, value)
	if err != nil {
		return fmt.Errorf("write metadata %s: %w", name, err)
	}
	return nil
}

// Metadata returns the metadata table.
func (s *Store) Metadata() (map[string]string, error) {
	rows, err := s.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	defer rows.Close()

	md := map[string]string{}
	for rows.Next() {
		var name, value sql.NullString
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("read metadata: %w", err)
		}
		md[name.String] = value.String
	}
	return md, rows.Err()
}

// FlipY converts t between XYZ and TMS row numbering. t must be a valid
// tile at its zoom.
func FlipY(t maptile.Tile) maptile.Tile {
	return maptile.New(t.X, uint32(tile.FlipRow(int(t.Y), int(t.Z))), t.Z)
}
