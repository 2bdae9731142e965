package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/filedock/filedock/internal/domain/entities"
)

// SQLiteStorageRecordRepository is the storage node's private bookkeeping:
// its own copy of every record it has assigned an id to.
type SQLiteStorageRecordRepository struct {
	db *sql.DB
}

// NewSQLiteStorageRecordRepository opens (or creates) the storage node
// database at dbPath and ensures the schema exists.
func NewSQLiteStorageRecordRepository(dbPath string) (*SQLiteStorageRecordRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS artifacts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		size INTEGER NOT NULL DEFAULT 0,
		path TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		is_folder BOOLEAN NOT NULL DEFAULT FALSE,
		folder_id TEXT,
		thumbnail TEXT
	);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStorageRecordRepository{db: db}, nil
}

// Close closes the database connection.
func (r *SQLiteStorageRecordRepository) Close() error {
	return r.db.Close()
}

// Ping checks database liveness for health reporting.
func (r *SQLiteStorageRecordRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Save persists the node's copy of an accepted record.
func (r *SQLiteStorageRecordRepository) Save(ctx context.Context, record *entities.FileRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO artifacts (id, name, type, size, path, created_at, updated_at, is_folder, folder_id, thumbnail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Name,
		record.Type,
		record.Size,
		record.Path,
		record.CreatedAt,
		record.UpdatedAt,
		record.IsFolder,
		nullable(record.FolderID),
		nullable(record.Thumbnail),
	)
	return err
}

// Get returns the record with the given id.
func (r *SQLiteStorageRecordRepository) Get(ctx context.Context, id string) (*entities.FileRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, type, size, path, created_at, updated_at, is_folder, folder_id, thumbnail
		FROM artifacts WHERE id = ?`, id)
	return scanFileRecord(row)
}

// Delete removes the record with the given id.
func (r *SQLiteStorageRecordRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM artifacts WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("id %s: %w", id, entities.ErrNotFound)
	}
	return nil
}

// UpdateFolder changes the node's placement bookkeeping for id.
func (r *SQLiteStorageRecordRepository) UpdateFolder(ctx context.Context, id string, folderID *string) (*entities.FileRecord, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE artifacts SET folder_id = ?, updated_at = ? WHERE id = ?",
		nullable(folderID), time.Now().UTC(), id,
	)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("id %s: %w", id, entities.ErrNotFound)
	}

	return r.Get(ctx, id)
}
