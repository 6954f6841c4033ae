package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/hbridge/careconnect-cli/internal/dbx"
	"github.com/hbridge/careconnect-cli/internal/logging"
	"github.com/hbridge/careconnect-cli/internal/store/keyvalue"
)

const (
	pendingWorkerKey   = "pending_worker_profile"
	pendingCareHomeKey = "pending_care_home_profile"
)

// PendingProfileStore keeps the profile fields collected by a registration
// wizard until the profile-completion flow consumes them. Registration only
// sends email/password/user_type to the backend; everything else the wizard
// gathered is parked here.
type PendingProfileStore struct {
	db  *sql.DB
	log logging.Logger
}

func NewPendingProfileStore(db *sql.DB, log logging.Logger) *PendingProfileStore {
	return &PendingProfileStore{db: db, log: log}
}

func pendingKey(userType string) string {
	if userType == "care_home" {
		return pendingCareHomeKey
	}
	return pendingWorkerKey
}

// Put stores the pending fields for the given user type ("worker" or
// "care_home") as a JSON blob, replacing any previous one. Failures are
// logged and swallowed: losing the blob costs the user a re-entry on the
// profile screen, not the registration itself.
func (s *PendingProfileStore) Put(ctx context.Context, userType string, fields map[string]string) {
	blob, err := json.Marshal(fields)
	if err != nil {
		s.log.Warn(ctx, "pending profile encode failed", "user_type", userType, "error", err)
		return
	}
	repo := keyvalue.NewSQLiteRepository(s.db)
	if err := repo.Set(ctx, pendingKey(userType), blob); err != nil {
		s.log.Warn(ctx, "pending profile save failed", "user_type", userType, "error", err)
	}
}

// Take returns the stored fields and deletes them, so the blob is consumed
// exactly once. The second return is false when nothing was stored.
func (s *PendingProfileStore) Take(ctx context.Context, userType string) (map[string]string, bool) {
	key := pendingKey(userType)

	var fields map[string]string
	found := false

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := keyvalue.NewSQLiteRepository(tx)
		blob, err := repo.Get(ctx, key)
		if err != nil {
			return err
		}
		if blob == nil {
			return nil
		}
		if err := json.Unmarshal(blob, &fields); err != nil {
			return err
		}
		found = true
		return repo.Delete(ctx, key)
	})
	if err != nil {
		s.log.Warn(ctx, "pending profile read failed", "user_type", userType, "error", err)
		return nil, false
	}
	return fields, found
}
