package gbmconv

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// AssetDB caches conversion output keyed by the SHA-1 of the input
type AssetDB struct {
	db *sql.DB
}

// NewAssetDB opens or creates the cache database in file
func NewAssetDB(file string) (*AssetDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	// Batch scans share the database between workers; sqlite has a
	// single writer
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS asset (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, mode TEXT NOT NULL, params TEXT NOT NULL, output BLOB NOT NULL, UNIQUE(sha1, mode, params))"); err != nil {
		db.Close()
		return nil, err
	}

	return &AssetDB{
		db: db,
	}, nil
}

// Close closes the database
func (db *AssetDB) Close() error {
	return db.db.Close()
}

func (db *AssetDB) addOutput(sha, mode, params string, output []byte) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO asset (sha1, mode, params, output) VALUES (?, ?, ?, ?)", sha, mode, params, output); err != nil {
		return err
	}
	return nil
}

// FindOutput returns the cached output for an input, or nil if there is none
func (db *AssetDB) FindOutput(sha, mode, params string) ([]byte, error) {
	var output []byte
	switch err := db.db.QueryRow("SELECT output FROM asset WHERE sha1 = ? AND mode = ? AND params = ?", sha, mode, params).Scan(&output); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return output, nil
	default:
		return nil, err
	}
}

// Count returns the number of cached outputs
func (db *AssetDB) Count() (int, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM asset").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Purge removes every cached output
func (db *AssetDB) Purge() error {
	if _, err := db.db.Exec("DELETE FROM asset"); err != nil {
		return err
	}
	return nil
}
