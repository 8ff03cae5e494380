package accounts

import (
	"context"
	"encoding/json"
	"fmt"

	"notekeeper/internal/models"
	"notekeeper/internal/shared"
)

// Credentials of the account written on first run so the app is usable
// without prior registration.
const (
	SeedUsername = "demo"
	SeedPassword = "demo"
)

// EnsureSeed writes the seed account on first startup, detected by the
// absence of the accounts key. Idempotent: if the key exists at all — even as
// an empty array — nothing is written.
func (d *Directory) EnsureSeed(ctx context.Context) error {
	raw, err := d.store.Get(ctx, accountsKey)
	if err != nil {
		d.log.Warn(ctx, "accounts blob unreadable during seed check, treating as absent", "error", err)
	}
	if raw != nil {
		return nil
	}

	seed := []models.Account{{
		ID:       shared.NewID(shared.AccountIDPrefix),
		Username: SeedUsername,
		Password: SeedPassword,
	}}

	blob, err := json.Marshal(seed)
	if err != nil {
		return fmt.Errorf("encode seed account: %w", err)
	}
	if err := d.store.Set(ctx, accountsKey, blob); err != nil {
		return fmt.Errorf("persist seed account: %w", err)
	}

	d.log.Info(ctx, "seed account created", "username", SeedUsername)
	return nil
}
