// Package accounts manages the global list of registered accounts, stored as
// a single JSON array blob under the "accounts" key.
//
// Every mutation is a whole-blob read-modify-write with no locking; if two
// writes race, the last writer wins. That is an accepted simplification for a
// single-user, single-session client.
package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"notekeeper/internal/logging"
	"notekeeper/internal/models"
	"notekeeper/internal/shared"
	"notekeeper/internal/storage"
)

const accountsKey = "accounts"

// Directory reads and writes the registered-accounts blob.
type Directory struct {
	store storage.Store
	log   logging.Logger
}

// NewDirectory returns a Directory bound to the given store.
func NewDirectory(store storage.Store, log logging.Logger) *Directory {
	return &Directory{store: store, log: log.With("component", "accounts")}
}

// List returns all registered accounts. A missing key, a read fault, or a
// malformed blob all yield an empty list; corrupt data is never fatal here.
func (d *Directory) List(ctx context.Context) []models.Account {
	raw, err := d.store.Get(ctx, accountsKey)
	if err != nil {
		d.log.Warn(ctx, "accounts blob unreadable, treating as empty", "error", err)
		return nil
	}
	return decodeAccounts(ctx, raw, d.log)
}

// decodeAccounts is the explicit decode step: either a decoded collection or
// the empty default, never an error escaping the storage boundary.
func decodeAccounts(ctx context.Context, raw []byte, log logging.Logger) []models.Account {
	if len(raw) == 0 {
		return nil
	}
	var accounts []models.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		log.Warn(ctx, "accounts blob malformed, treating as empty", "error", err)
		return nil
	}
	return accounts
}

// Register creates a new account. The username must be unique (exact,
// case-sensitive match, checked only here) and both fields must be non-empty
// after trimming. The whole list is read, appended to, and written back.
func (d *Directory) Register(ctx context.Context, username, password string) (models.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.Account{}, fmt.Errorf("%w: username is required", shared.ErrorValidation)
	}
	if strings.TrimSpace(password) == "" {
		return models.Account{}, fmt.Errorf("%w: password is required", shared.ErrorValidation)
	}

	list := d.List(ctx)
	for _, a := range list {
		if a.Username == username {
			return models.Account{}, fmt.Errorf("%w: %s", shared.ErrorDuplicateUsername, username)
		}
	}

	account := models.Account{
		ID:       shared.NewID(shared.AccountIDPrefix),
		Username: username,
		Password: password,
	}

	if err := d.save(ctx, append(list, account)); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// Authenticate returns the first account whose username and password both
// match exactly. An unknown username and a wrong password produce the same
// failure on purpose.
func (d *Directory) Authenticate(ctx context.Context, username, password string) (models.Account, error) {
	for _, a := range d.List(ctx) {
		if a.Username == username && a.Password == password {
			return a, nil
		}
	}
	return models.Account{}, shared.ErrorAuthentication
}

func (d *Directory) save(ctx context.Context, list []models.Account) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := d.store.Set(ctx, accountsKey, raw); err != nil {
		return fmt.Errorf("persist accounts: %w", err)
	}
	return nil
}
