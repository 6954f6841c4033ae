package store

import (
	"context"
	"database/sql"

	"github.com/hbridge/careconnect-cli/internal/dbx"
	"github.com/hbridge/careconnect-cli/internal/logging"
	"github.com/hbridge/careconnect-cli/internal/store/keyvalue"
)

// Storage keys for the token pair. If accessTokenKey is absent the session
// is unauthenticated; presence does not imply validity (confirmed only by a
// successful /auth/me call).
const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// TokenPair carries the opaque tokens returned by login. RefreshToken may
// be empty; the client stores it but never sends it (no rotation).
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Empty reports whether the pair represents a logged-out state.
func (p TokenPair) Empty() bool {
	return p.AccessToken == ""
}

// TokenStore persists the token pair. Storage failures are logged and
// swallowed so callers never see an error from here: a broken local
// database simply behaves as logged-out.
type TokenStore struct {
	db  *sql.DB
	log logging.Logger
}

func NewTokenStore(db *sql.DB, log logging.Logger) *TokenStore {
	return &TokenStore{db: db, log: log}
}

// Save writes both tokens in one transaction; the last write wins. A pair
// with no refresh token removes any previously stored one.
func (s *TokenStore) Save(ctx context.Context, pair TokenPair) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := keyvalue.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, accessTokenKey, []byte(pair.AccessToken)); err != nil {
			return err
		}
		if pair.RefreshToken == "" {
			return repo.Delete(ctx, refreshTokenKey)
		}
		return repo.Set(ctx, refreshTokenKey, []byte(pair.RefreshToken))
	})
	if err != nil {
		s.log.Warn(ctx, "token store save failed", "error", err)
	}
}

// Read returns the stored pair, or the zero pair when nothing is stored or
// storage is unavailable.
func (s *TokenStore) Read(ctx context.Context) TokenPair {
	repo := keyvalue.NewSQLiteRepository(s.db)

	access, err := repo.Get(ctx, accessTokenKey)
	if err != nil {
		s.log.Warn(ctx, "token store read failed", "error", err)
		return TokenPair{}
	}
	refresh, err := repo.Get(ctx, refreshTokenKey)
	if err != nil {
		s.log.Warn(ctx, "token store read failed", "error", err)
		return TokenPair{AccessToken: string(access)}
	}
	return TokenPair{AccessToken: string(access), RefreshToken: string(refresh)}
}

// Clear removes both tokens unconditionally.
func (s *TokenStore) Clear(ctx context.Context) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := keyvalue.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, accessTokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, refreshTokenKey)
	})
	if err != nil {
		s.log.Warn(ctx, "token store clear failed", "error", err)
	}
}

// Access returns the current access token, or "" when logged out. This is
// the only lookup the API gateway needs for bearer injection.
func (s *TokenStore) Access(ctx context.Context) string {
	return s.Read(ctx).AccessToken
}
