package store

import (
	"database/sql"
	"time"

	_ "github.com/glebarez/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// Activation is one click on a list row
type Activation struct {
	ID        int64
	Slot      int
	DataIndex int
	Value     string
	Timestamp time.Time
}

// Open opens the SQLite database and creates tables if needed
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, err
	}

	db := &DB{DB: sqlDB}

	if err := db.createTables(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// createTables creates the necessary database tables
func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS activations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		slot INTEGER NOT NULL,
		data_index INTEGER NOT NULL,
		value TEXT NOT NULL,
		timestamp INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_activations_timestamp ON activations(timestamp DESC);
	`

	_, err := db.Exec(query)
	return err
}

// Record stores an activation and returns it with its assigned ID
func (db *DB) Record(a Activation) (Activation, error) {
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}

	res, err := db.Exec(
		`INSERT INTO activations (slot, data_index, value, timestamp) VALUES (?, ?, ?, ?)`,
		a.Slot,
		a.DataIndex,
		a.Value,
		a.Timestamp.UnixNano(),
	)
	if err != nil {
		return Activation{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Activation{}, err
	}
	a.ID = id
	return a, nil
}

// Recent returns the latest activations, newest first
func (db *DB) Recent(limit int) ([]Activation, error) {
	query := `
	SELECT id, slot, data_index, value, timestamp
	FROM activations
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Activation
	for rows.Next() {
		var a Activation
		var ts int64
		if err := rows.Scan(&a.ID, &a.Slot, &a.DataIndex, &a.Value, &ts); err != nil {
			return nil, err
		}
		a.Timestamp = time.Unix(0, ts)
		records = append(records, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Count returns the number of stored activations
func (db *DB) Count() (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM activations").Scan(&n)
	return n, err
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
