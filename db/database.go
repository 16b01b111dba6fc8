// db/database.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"greeter/shared"
)

// InitDB opens the SQLite database at path and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	log.Println("Initializing SQLite database:", path)

	d, err := sql.Open("sqlite3", path+"?_journal_mode=WAL") // WAL for better concurrency
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Ping DB to ensure connection is live
	if err = d.Ping(); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS greetings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workflow_id TEXT NOT NULL,
		name TEXT NOT NULL,
		greeting TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err = d.Exec(createTableSQL); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to create greetings table: %w", err)
	}

	log.Println("Database initialized successfully.")
	return d, nil
}

// Store persists and reads greeting records.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// RecordGreeting inserts one served greeting.
func (s *Store) RecordGreeting(ctx context.Context, rec shared.GreetingRecord) error {
	query := `INSERT INTO greetings (workflow_id, name, greeting, created_at) VALUES (?, ?, ?, ?)`
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if _, err := s.db.ExecContext(ctx, query, rec.WorkflowID, rec.Name, rec.Greeting, createdAt); err != nil {
		return fmt.Errorf("failed to record greeting: %w", err)
	}
	return nil
}

// RecentGreetings returns up to limit greetings, newest first.
func (s *Store) RecentGreetings(ctx context.Context, limit int) ([]shared.GreetingRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, workflow_id, name, greeting, created_at FROM greetings ORDER BY id DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query greetings: %w", err)
	}
	defer rows.Close()

	records := make([]shared.GreetingRecord, 0, limit)
	for rows.Next() {
		var rec shared.GreetingRecord
		if err := rows.Scan(&rec.ID, &rec.WorkflowID, &rec.Name, &rec.Greeting, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan greeting row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read greeting rows: %w", err)
	}
	return records, nil
}
