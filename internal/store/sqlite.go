package store

import (
	"context"
	"database/sql"
	"log"

	_ "modernc.org/sqlite"
)

// UserLocation is one row of the weather table: a user's nick and the last
// location they looked up. One row per nick.
type UserLocation struct {
	Nick string
	Loc  string
}

// LocationStore is the narrow durable-table contract the cache needs:
// select-all plus keyed insert/update.
type LocationStore interface {
	SelectAll(ctx context.Context) ([]UserLocation, error)
	Insert(ctx context.Context, nick, loc string) error
	Update(ctx context.Context, nick, loc string) error
	Close() error
}

// SQLiteStore implements LocationStore on sqlite (pure Go driver
// modernc.org/sqlite).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and applies the schema.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		log.Println("warning: could not set WAL mode:", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS weather (
        nick TEXT PRIMARY KEY,
        loc TEXT NOT NULL
    );`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) SelectAll(ctx context.Context) ([]UserLocation, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT nick, loc FROM weather`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UserLocation
	for rows.Next() {
		var ul UserLocation
		if err := rows.Scan(&ul.Nick, &ul.Loc); err != nil {
			return nil, err
		}
		out = append(out, ul)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Insert(ctx context.Context, nick, loc string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO weather(nick, loc) VALUES(?, ?)`, nick, loc)
	return err
}

func (s *SQLiteStore) Update(ctx context.Context, nick, loc string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE weather SET loc = ? WHERE nick = ?`, loc, nick)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
