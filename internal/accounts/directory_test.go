package accounts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/logging"
	"notekeeper/internal/shared"
	"notekeeper/internal/storage"
)

func testLogger() logging.Logger {
	return logging.NewText(io.Discard, slog.LevelError)
}

func newDirectory(t *testing.T) (*Directory, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewDirectory(store, testLogger()), store
}

// faultyStore wraps a working store and fails selected operations.
type faultyStore struct {
	storage.Store
	getErr error
	setErr error
}

func (f *faultyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Store.Get(ctx, key)
}

func (f *faultyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.Set(ctx, key, value)
}

func TestRegister_EmptyFieldsFailValidation(t *testing.T) {
	d, _ := newDirectory(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "pw"},
		{"whitespace username", "   ", "pw"},
		{"empty password", "alice", ""},
		{"whitespace password", "alice", "\t "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := d.Register(ctx, tc.username, tc.password)
			require.ErrorIs(t, err, shared.ErrorValidation)
		})
	}

	assert.Empty(t, d.List(ctx))
}

func TestRegister_AppendsAndPersists(t *testing.T) {
	d, _ := newDirectory(t)
	ctx := context.Background()

	account, err := d.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Contains(t, account.ID, "u_")
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, "pw1", account.Password)

	list := d.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, account, list[0])
}

func TestRegister_DuplicateUsernameFails(t *testing.T) {
	d, _ := newDirectory(t)
	ctx := context.Background()

	_, err := d.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = d.Register(ctx, "alice", "other")
	require.ErrorIs(t, err, shared.ErrorDuplicateUsername)

	assert.Len(t, d.List(ctx), 1)
}

func TestRegister_UsernamesAreCaseSensitive(t *testing.T) {
	d, _ := newDirectory(t)
	ctx := context.Background()

	_, err := d.Register(ctx, "alice", "pw")
	require.NoError(t, err)
	_, err = d.Register(ctx, "Alice", "pw")
	require.NoError(t, err)

	assert.Len(t, d.List(ctx), 2)
}

func TestRegister_WriteFaultSurfaced(t *testing.T) {
	store := &faultyStore{
		Store:  storage.NewMemoryStore(),
		setErr: fmt.Errorf("kv set [accounts]: %w: disk full", shared.ErrorStorageFault),
	}
	d := NewDirectory(store, testLogger())

	_, err := d.Register(context.Background(), "alice", "pw")
	require.ErrorIs(t, err, shared.ErrorStorageFault)
}

func TestAuthenticate_ExactMatchOnly(t *testing.T) {
	d, _ := newDirectory(t)
	ctx := context.Background()

	registered, err := d.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	got, err := d.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, registered, got)

	// wrong password and unknown username fail identically
	_, errWrongPw := d.Authenticate(ctx, "alice", "wrong")
	_, errUnknown := d.Authenticate(ctx, "bob", "pw1")
	require.ErrorIs(t, errWrongPw, shared.ErrorAuthentication)
	require.ErrorIs(t, errUnknown, shared.ErrorAuthentication)
	assert.Equal(t, errWrongPw.Error(), errUnknown.Error())
}

func TestList_MissingKeyIsEmpty(t *testing.T) {
	d, _ := newDirectory(t)
	assert.Empty(t, d.List(context.Background()))
}

func TestList_CorruptBlobTreatedAsEmpty(t *testing.T) {
	d, store := newDirectory(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "accounts", []byte("{not json")))
	assert.Empty(t, d.List(ctx))
}

func TestList_ReadFaultTreatedAsEmpty(t *testing.T) {
	store := &faultyStore{
		Store:  storage.NewMemoryStore(),
		getErr: fmt.Errorf("kv get [accounts]: %w: io error", shared.ErrorStorageFault),
	}
	d := NewDirectory(store, testLogger())

	assert.Empty(t, d.List(context.Background()))
}
