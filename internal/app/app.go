// Package app wires the store and the data-access components together and
// exposes the operations the UI layer calls. The store instance is created
// once at startup and injected into every component; there is no ambient
// global handle.
package app

import (
	"context"

	"notekeeper/internal/accounts"
	"notekeeper/internal/config"
	"notekeeper/internal/logging"
	"notekeeper/internal/models"
	"notekeeper/internal/notes"
	"notekeeper/internal/session"
	"notekeeper/internal/storage"
)

// App orchestrates accounts, session, and notes over one shared store.
type App struct {
	store    storage.Store
	kind     storage.Kind
	log      logging.Logger
	accounts *accounts.Directory
	sessions *session.Store
	notes    *notes.Repository
}

// New opens the store per cfg and constructs the components around it.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, kind, err := storage.Open(ctx, cfg.Backend, cfg.DatabasePath, log)
	if err != nil {
		return nil, err
	}

	return &App{
		store:    store,
		kind:     kind,
		log:      log,
		accounts: accounts.NewDirectory(store, log),
		sessions: session.NewStore(store, log),
		notes:    notes.NewRepository(store, log),
	}, nil
}

// StoreKind reports which backend variant was selected at startup.
func (a *App) StoreKind() storage.Kind {
	return a.kind
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.store.Close()
}

// RegisterAccount creates a new account.
func (a *App) RegisterAccount(ctx context.Context, username, password string) (models.Account, error) {
	return a.accounts.Register(ctx, username, password)
}

// Authenticate checks the given credentials against the account list.
func (a *App) Authenticate(ctx context.Context, username, password string) (models.Account, error) {
	return a.accounts.Authenticate(ctx, username, password)
}

// ResumeSession returns the persisted session, or nil when logged out.
func (a *App) ResumeSession(ctx context.Context) *models.Session {
	return a.sessions.Resume(ctx)
}

// StartSession persists the session pointer for account.
func (a *App) StartSession(ctx context.Context, account models.Account) error {
	return a.sessions.Start(ctx, account)
}

// EndSession clears the session pointer.
func (a *App) EndSession(ctx context.Context) error {
	return a.sessions.End(ctx)
}

// ListNotes returns the account's notes sorted newest first. The repository
// returns storage order; the display sort happens here, at the caller.
func (a *App) ListNotes(ctx context.Context, accountID string) []models.Note {
	list := a.notes.List(ctx, accountID)
	notes.SortByCreatedAtDesc(list)
	return list
}

// CreateNote adds a note and returns the updated collection.
func (a *App) CreateNote(ctx context.Context, accountID, title, body string) ([]models.Note, error) {
	return a.notes.Create(ctx, accountID, title, body)
}

// UpdateNote edits a note's title and body and returns the updated collection.
func (a *App) UpdateNote(ctx context.Context, accountID, noteID, title, body string) ([]models.Note, error) {
	return a.notes.Update(ctx, accountID, noteID, title, body)
}

// DeleteNote removes a note and returns the updated collection. Deleting an
// unknown id is a no-op.
func (a *App) DeleteNote(ctx context.Context, accountID, noteID string) ([]models.Note, error) {
	return a.notes.Delete(ctx, accountID, noteID)
}
