package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/logging"
	"notekeeper/internal/models"
	"notekeeper/internal/shared"
	"notekeeper/internal/storage"
)

func testLogger() logging.Logger {
	return logging.NewText(io.Discard, slog.LevelError)
}

func newStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	return NewStore(kv, testLogger()), kv
}

func TestResume_NoSession(t *testing.T) {
	s, _ := newStore(t)
	assert.Nil(t, s.Resume(context.Background()))
}

func TestStartResume_RoundTrip(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()

	account := models.Account{ID: "u_1700000000000", Username: "alice", Password: "pw1"}
	require.NoError(t, s.Start(ctx, account))

	sess := s.Resume(ctx)
	require.NotNil(t, sess)
	assert.Equal(t, account.ID, sess.ID)
	assert.Equal(t, account.Username, sess.Username)

	// the persisted record never carries the password
	raw, err := kv.Get(ctx, "current_session")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "pw1")
	assert.NotContains(t, string(raw), "password")
}

func TestEnd_ClearsSession(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Start(ctx, models.Account{ID: "u_1", Username: "alice"}))
	require.NoError(t, s.End(ctx))

	assert.Nil(t, s.Resume(ctx))

	// ending an already-ended session is fine
	require.NoError(t, s.End(ctx))
}

func TestResume_MalformedRecordTreatedAsAbsent(t *testing.T) {
	s, kv := newStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "current_session", []byte("###")))
	assert.Nil(t, s.Resume(ctx))

	require.NoError(t, kv.Set(ctx, "current_session", []byte(`{"username":"ghost"}`)))
	assert.Nil(t, s.Resume(ctx), "record without an id is not a session")
}

type faultyStore struct {
	storage.Store
	getErr error
}

func (f *faultyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Store.Get(ctx, key)
}

func TestResume_ReadFaultTreatedAsAbsent(t *testing.T) {
	kv := &faultyStore{
		Store:  storage.NewMemoryStore(),
		getErr: fmt.Errorf("kv get [current_session]: %w: io error", shared.ErrorStorageFault),
	}
	s := NewStore(kv, testLogger())

	assert.Nil(t, s.Resume(context.Background()))
}
