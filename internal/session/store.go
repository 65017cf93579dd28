// Package session persists the identity of the currently authenticated user
// (user id, bearer token, display name, email) plus the dark-mode flag in a
// local SQLite bucket. One Store instance is created at process start and
// handed to every component that needs it; there is no shared global.
package session

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/pisystem/client/internal/dbx"
	"github.com/pisystem/client/internal/logging"
	"github.com/pisystem/client/internal/models"
)

// Bucket keys. The userId is stored as "-1" when absent, preserving the
// on-disk shape of the original client; consumers never see the sentinel.
const (
	keyUserID   = "user_id"
	keyToken    = "auth_token"
	keyName     = "user_name"
	keyEmail    = "user_email"
	keyDarkMode = "dark_mode"
)

const sentinelUserID int64 = -1

// Store is the durable session store. All operations are synchronous and
// idempotent; a missing key yields the typed default, never an error.
// Safe for concurrent readers with a single writer.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

// NewStore wraps an already-migrated database handle.
func NewStore(db *sql.DB, log logging.Logger) *Store {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Store{db: db, log: log}
}

func (s *Store) bucket() *sqliteBucket {
	return newSQLiteBucket(s.db)
}

// SaveUserID persists the user id.
func (s *Store) SaveUserID(ctx context.Context, userID int64) error {
	return s.bucket().set(ctx, keyUserID, strconv.FormatInt(userID, 10))
}

// UserID returns the stored user id and true, or (0, false) when no user is
// logged in.
func (s *Store) UserID(ctx context.Context) (int64, bool, error) {
	raw, ok, err := s.bucket().get(ctx, keyUserID)
	if err != nil || !ok {
		return 0, false, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, err
	}
	if id == sentinelUserID {
		return 0, false, nil
	}
	return id, true, nil
}

// SaveToken persists the bearer token.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	return s.bucket().set(ctx, keyToken, token)
}

// Token returns the stored bearer token and true, or ("", false) when none
// is stored.
func (s *Store) Token(ctx context.Context) (string, bool, error) {
	return s.bucket().get(ctx, keyToken)
}

// SaveName persists the display name.
func (s *Store) SaveName(ctx context.Context, name string) error {
	return s.bucket().set(ctx, keyName, name)
}

// Name returns the stored display name and true, or ("", false).
func (s *Store) Name(ctx context.Context) (string, bool, error) {
	return s.bucket().get(ctx, keyName)
}

// SaveEmail persists the email address.
func (s *Store) SaveEmail(ctx context.Context, email string) error {
	return s.bucket().set(ctx, keyEmail, email)
}

// Email returns the stored email address and true, or ("", false).
func (s *Store) Email(ctx context.Context) (string, bool, error) {
	return s.bucket().get(ctx, keyEmail)
}

// SetDarkMode persists the dark-mode flag.
func (s *Store) SetDarkMode(ctx context.Context, enabled bool) error {
	v := "0"
	if enabled {
		v = "1"
	}
	return s.bucket().set(ctx, keyDarkMode, v)
}

// DarkMode returns the dark-mode flag; the default is false.
func (s *Store) DarkMode(ctx context.Context) (bool, error) {
	raw, ok, err := s.bucket().get(ctx, keyDarkMode)
	if err != nil || !ok {
		return false, err
	}
	return raw == "1", nil
}

// SaveAuthResult writes every identity field present on a successful auth
// response in a single transaction, so a crash mid-write cannot leave a
// half-updated session.
func (s *Store) SaveAuthResult(ctx context.Context, res models.AuthResult) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		b := newSQLiteBucket(tx)
		if res.Token != nil {
			if err := b.set(ctx, keyToken, *res.Token); err != nil {
				return err
			}
		}
		if res.UserID != nil {
			if err := b.set(ctx, keyUserID, strconv.FormatInt(*res.UserID, 10)); err != nil {
				return err
			}
		}
		if res.Name != nil {
			if err := b.set(ctx, keyName, *res.Name); err != nil {
				return err
			}
		}
		if res.Email != nil {
			if err := b.set(ctx, keyEmail, *res.Email); err != nil {
				return err
			}
		}
		return nil
	})
}

// ClearUserID removes the stored user id.
func (s *Store) ClearUserID(ctx context.Context) error {
	return s.bucket().delete(ctx, keyUserID)
}

// ClearAll removes the identity fields (user id, token, name, email).
// The dark-mode flag is a presentation preference, not identity, and
// survives a logout.
func (s *Store) ClearAll(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		b := newSQLiteBucket(tx)
		for _, key := range []string{keyUserID, keyToken, keyName, keyEmail} {
			if err := b.delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// IsAuthenticated reports whether a user id and a bearer token are both
// present. Storage errors are logged and treated as "not authenticated".
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	_, hasUser, err := s.UserID(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read user id", "error", err)
		return false
	}
	_, hasToken, err := s.Token(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read token", "error", err)
		return false
	}
	return hasUser && hasToken
}
