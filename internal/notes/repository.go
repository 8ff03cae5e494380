// Package notes manages one note collection per account, stored as a JSON
// array blob under "notes:<accountId>".
//
// Every operation is a full read of the account's blob, an in-memory
// mutation, and a full write-back. There is no locking around that sequence;
// concurrent writes to the same blob are last-writer-wins.
package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"notekeeper/internal/logging"
	"notekeeper/internal/models"
	"notekeeper/internal/shared"
	"notekeeper/internal/storage"
)

// createdAtLayout is a fixed-width UTC ISO-8601 layout with milliseconds.
// Fixed width keeps lexicographic comparison equal to chronological order,
// which the display sort relies on.
const createdAtLayout = "2006-01-02T15:04:05.000Z"

// Repository reads and writes per-account note blobs.
type Repository struct {
	kv  storage.Store
	log logging.Logger
}

// NewRepository returns a Repository bound to the given key-value store.
func NewRepository(kv storage.Store, log logging.Logger) *Repository {
	return &Repository{kv: kv, log: log.With("component", "notes")}
}

func noteKey(accountID string) string {
	return "notes:" + accountID
}

// List returns the account's notes in storage order (newest-first insertion
// order, not guaranteed). Sorting for display is the caller's job, see
// SortByCreatedAtDesc. Missing or corrupt data yields an empty collection.
func (r *Repository) List(ctx context.Context, accountID string) []models.Note {
	raw, err := r.kv.Get(ctx, noteKey(accountID))
	if err != nil {
		r.log.Warn(ctx, "notes blob unreadable, treating as empty", "account", accountID, "error", err)
		return nil
	}
	return decodeNotes(ctx, raw, accountID, r.log)
}

func decodeNotes(ctx context.Context, raw []byte, accountID string, log logging.Logger) []models.Note {
	if len(raw) == 0 {
		return nil
	}
	var list []models.Note
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Warn(ctx, "notes blob malformed, treating as empty", "account", accountID, "error", err)
		return nil
	}
	return list
}

// Create adds a note at the head of the account's collection and returns the
// updated collection. The title must be non-empty after trimming; the body
// may be empty.
func (r *Repository) Create(ctx context.Context, accountID, title, body string) ([]models.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", shared.ErrorValidation)
	}

	note := models.Note{
		ID:        shared.NewID(shared.NoteIDPrefix),
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC().Format(createdAtLayout),
	}

	list := append([]models.Note{note}, r.List(ctx, accountID)...)
	if err := r.save(ctx, accountID, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update replaces title and body of the note with the given id, preserving
// its id and created_at, and returns the updated collection.
func (r *Repository) Update(ctx context.Context, accountID, noteID, title, body string) ([]models.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", shared.ErrorValidation)
	}

	list := r.List(ctx, accountID)
	found := false
	for i := range list {
		if list[i].ID == noteID {
			list[i].Title = title
			list[i].Body = body
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: note %s", shared.ErrorNotFound, noteID)
	}

	if err := r.save(ctx, accountID, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes the note with the given id and returns the updated
// collection. Deleting an absent id is a silent no-op.
func (r *Repository) Delete(ctx context.Context, accountID, noteID string) ([]models.Note, error) {
	list := r.List(ctx, accountID)
	kept := list[:0]
	for _, n := range list {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}

	if err := r.save(ctx, accountID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (r *Repository) save(ctx context.Context, accountID string, list []models.Note) error {
	if list == nil {
		list = []models.Note{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if err := r.kv.Set(ctx, noteKey(accountID), raw); err != nil {
		return fmt.Errorf("persist notes: %w", err)
	}
	return nil
}

// SortByCreatedAtDesc orders notes newest first. created_at strings are
// fixed-width ISO-8601, so plain string comparison is chronological.
func SortByCreatedAtDesc(list []models.Note) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt > list[j].CreatedAt
	})
}
