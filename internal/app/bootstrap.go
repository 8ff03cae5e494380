package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const installIDKey = "install_id"

// Bootstrap prepares first-run state: the seed account (only when the
// accounts key is wholly absent) and a stable installation id. Safe to call
// on every startup; a second call never duplicates either record.
func (a *App) Bootstrap(ctx context.Context) error {
	if err := a.accounts.EnsureSeed(ctx); err != nil {
		return err
	}
	return a.ensureInstallID(ctx)
}

func (a *App) ensureInstallID(ctx context.Context) error {
	raw, err := a.store.Get(ctx, installIDKey)
	if err != nil {
		a.log.Warn(ctx, "install id unreadable, generating a new one", "error", err)
	}
	if len(raw) > 0 {
		return nil
	}

	id := uuid.NewString()
	if err := a.store.Set(ctx, installIDKey, []byte(id)); err != nil {
		return fmt.Errorf("persist install id: %w", err)
	}
	a.log.Info(ctx, "installation initialized", "install_id", id)
	return nil
}

// InstallID returns the persisted installation id, or "" when unavailable.
func (a *App) InstallID(ctx context.Context) string {
	raw, err := a.store.Get(ctx, installIDKey)
	if err != nil {
		return ""
	}
	return string(raw)
}
