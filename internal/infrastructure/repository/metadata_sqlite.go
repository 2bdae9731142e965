package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/filedock/filedock/internal/domain/entities"
)

// SQLiteMetadataRepository is the registry's canonical listing, backed by a
// local SQLite database.
type SQLiteMetadataRepository struct {
	db *sql.DB
}

// NewSQLiteMetadataRepository opens (or creates) the registry database at
// dbPath and ensures the schema exists.
func NewSQLiteMetadataRepository(dbPath string) (*SQLiteMetadataRepository, error) {
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
	CREATE TABLE IF NOT EXISTS files (
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

	CREATE INDEX IF NOT EXISTS idx_files_folder_id ON files(folder_id);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteMetadataRepository{db: db}, nil
}

// Close closes the database connection.
func (r *SQLiteMetadataRepository) Close() error {
	return r.db.Close()
}

// Ping checks database liveness for health reporting.
func (r *SQLiteMetadataRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// List returns the records under folderID (nil for root) in insertion order.
func (r *SQLiteMetadataRepository) List(ctx context.Context, folderID *string) ([]entities.FileRecord, error) {
	query := `
		SELECT id, name, type, size, path, created_at, updated_at, is_folder, folder_id, thumbnail
		FROM files WHERE folder_id IS NULL ORDER BY rowid
	`
	args := []interface{}{}
	if folderID != nil {
		query = `
		SELECT id, name, type, size, path, created_at, updated_at, is_folder, folder_id, thumbnail
		FROM files WHERE folder_id = ? ORDER BY rowid
		`
		args = append(args, *folderID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []entities.FileRecord{}
	for rows.Next() {
		record, err := scanFileRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// Insert persists a record under its storage-node-issued id.
func (r *SQLiteMetadataRepository) Insert(ctx context.Context, record *entities.FileRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO files (id, name, type, size, path, created_at, updated_at, is_folder, folder_id, thumbnail)
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
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint") {
		return fmt.Errorf("id %s: %w", record.ID, entities.ErrDuplicateID)
	}
	return err
}

// Remove deletes the record with the given id.
func (r *SQLiteMetadataRepository) Remove(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM files WHERE id = ?", id)
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

// UpdateFolder changes only the parent reference and updatedAt.
func (r *SQLiteMetadataRepository) UpdateFolder(ctx context.Context, id string, folderID *string) (*entities.FileRecord, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE files SET folder_id = ?, updated_at = ? WHERE id = ?",
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

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, type, size, path, created_at, updated_at, is_folder, folder_id, thumbnail
		FROM files WHERE id = ?`, id)
	return scanFileRecord(row)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFileRecord(row rowScanner) (*entities.FileRecord, error) {
	var record entities.FileRecord
	var folderID, thumbnail sql.NullString

	err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Type,
		&record.Size,
		&record.Path,
		&record.CreatedAt,
		&record.UpdatedAt,
		&record.IsFolder,
		&folderID,
		&thumbnail,
	)
	if err == sql.ErrNoRows {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if folderID.Valid {
		record.FolderID = &folderID.String
	}
	if thumbnail.Valid {
		record.Thumbnail = &thumbnail.String
	}
	return &record, nil
}

func nullable(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
