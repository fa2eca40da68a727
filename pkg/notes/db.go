// Package notes persists authoring notes attached to outline items.
package notes

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/casskell/outline_viewer/pkg/model"
)

// DB handles note persistence
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates the notes database at the given path
func OpenDB(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ndb := &DB{db: db}
	if err := ndb.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return ndb, nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		item_id TEXT NOT NULL,
		author TEXT NOT NULL,
		text TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_notes_item_id ON notes(item_id);
	`

	_, err := d.db.Exec(schema)
	return err
}

// Add inserts a new note and fills in its assigned ID and timestamp
func (d *DB) Add(n *model.Note) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	result, err := d.db.Exec(`
		INSERT INTO notes (item_id, author, text, created_at)
		VALUES (?, ?, ?, ?)
	`, n.ItemID, n.Author, n.Text, n.CreatedAt)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = id
	return nil
}

// ForItem returns all notes for a given item ID, newest first
func (d *DB) ForItem(itemID string) ([]model.Note, error) {
	rows, err := d.db.Query(`
		SELECT id, item_id, author, text, created_at
		FROM notes
		WHERE item_id = ?
		ORDER BY created_at DESC
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.ItemID, &n.Author, &n.Text, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// CountByItem returns the number of notes per item ID
func (d *DB) CountByItem() (map[string]int, error) {
	rows, err := d.db.Query(`
		SELECT item_id, COUNT(*)
		FROM notes
		GROUP BY item_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var itemID string
		var count int
		if err := rows.Scan(&itemID, &count); err != nil {
			return nil, err
		}
		counts[itemID] = count
	}
	return counts, rows.Err()
}

// Delete removes a note by ID
func (d *DB) Delete(id int64) error {
	_, err := d.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	return err
}
