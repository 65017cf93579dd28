package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pisystem/client/internal/dbx"
)

// sqliteBucket is a flat key/value bucket over a single SQLite table.
// It is the persistence primitive behind Store; every write is durable as
// soon as the statement returns.
type sqliteBucket struct {
	db dbx.DBTX
}

func newSQLiteBucket(db dbx.DBTX) *sqliteBucket {
	return &sqliteBucket{db: db}
}

// get returns the stored value and true, or ("", false) for a missing key.
func (b *sqliteBucket) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := b.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get preferences[%s]: %w", key, err)
	}
	return value, true, nil
}

func (b *sqliteBucket) set(ctx context.Context, key string, value string) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set preferences[%s]: %w", key, err)
	}
	return nil
}

func (b *sqliteBucket) delete(ctx context.Context, key string) error {
	_, err := b.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete preferences[%s]: %w", key, err)
	}
	return nil
}
