// Package session tracks which account is currently logged in. A single
// global slot under the "current_session" key, persisted so the session
// survives process restarts.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"notekeeper/internal/logging"
	"notekeeper/internal/models"
	"notekeeper/internal/storage"
)

const sessionKey = "current_session"

// Store reads and writes the current-session pointer.
type Store struct {
	kv  storage.Store
	log logging.Logger
}

// NewStore returns a session Store bound to the given key-value store.
func NewStore(kv storage.Store, log logging.Logger) *Store {
	return &Store{kv: kv, log: log.With("component", "session")}
}

// Resume returns the persisted session, or nil when no session is stored.
// A read fault or malformed record is treated as "not logged in".
func (s *Store) Resume(ctx context.Context) *models.Session {
	raw, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		s.log.Warn(ctx, "session record unreadable, treating as logged out", "error", err)
		return nil
	}
	if len(raw) == 0 {
		return nil
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.log.Warn(ctx, "session record malformed, treating as logged out", "error", err)
		return nil
	}
	if sess.ID == "" {
		return nil
	}
	return &sess
}

// Start persists the session pointer for the given account. The password is
// deliberately excluded: the session record never carries credentials.
func (s *Store) Start(ctx context.Context, account models.Account) error {
	raw, err := json.Marshal(models.Session{ID: account.ID, Username: account.Username})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.kv.Set(ctx, sessionKey, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// End removes the session pointer.
func (s *Store) End(ctx context.Context) error {
	if err := s.kv.Remove(ctx, sessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
