package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/annakovaleva/blogview/internal/dbx"
)

// Repository reads and writes one opaque record per namespace.
type Repository interface {
	Get(ctx context.Context, namespace string) ([]byte, error)
	Set(ctx context.Context, namespace string, value []byte) error
	Delete(ctx context.Context, namespace string) error
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Get returns the record for namespace, or nil when none was ever written.
func (r *SQLiteRepository) Get(ctx context.Context, namespace string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM records WHERE namespace = ?`, namespace).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record[%s]: %w", namespace, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, namespace string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (namespace, value) VALUES (?, ?)
		ON CONFLICT(namespace) DO UPDATE SET value = excluded.value
	`, namespace, value)
	if err != nil {
		return fmt.Errorf("failed to set record[%s]: %w", namespace, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, namespace string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE namespace = ?`, namespace)
	if err != nil {
		return fmt.Errorf("failed to delete record[%s]: %w", namespace, err)
	}
	return nil
}
