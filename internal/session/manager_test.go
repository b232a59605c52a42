package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lockbox/internal/common"
	"github.com/dmitrijs2005/lockbox/internal/logging"
	"github.com/dmitrijs2005/lockbox/internal/storage"
	"github.com/dmitrijs2005/lockbox/internal/users"
)

func setup(t *testing.T) (*Manager, *users.Directory, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	log := logging.NewDefault("error")
	d := users.NewDirectory(store, users.SchemeLegacy, log)
	return NewManager(store, d, log), d, store
}

func TestStartThenResume(t *testing.T) {
	m, d, _ := setup(t)
	ctx := context.Background()

	account, err := d.Register(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	require.NoError(t, m.Start(ctx, account))

	got, err := m.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.Equal(t, account.Email, got.Email)
}

func TestResume_NoSession(t *testing.T) {
	m, _, _ := setup(t)

	_, err := m.Resume(context.Background())
	assert.ErrorIs(t, err, common.ErrNoSession)
}

func TestResume_StaleSession(t *testing.T) {
	m, d, store := setup(t)
	ctx := context.Background()

	account, err := d.Register(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	require.NoError(t, m.Start(ctx, account))

	// pointer references an id that no longer matches the directory entry
	require.NoError(t, store.Set(ctx, storage.KeySession,
		`{"userId": 42, "email": "alice@example.com"}`))
	_, err = m.Resume(ctx)
	assert.ErrorIs(t, err, common.ErrNoSession)

	// pointer references an account that does not exist at all
	require.NoError(t, store.Set(ctx, storage.KeySession,
		`{"userId": 42, "email": "gone@example.com"}`))
	_, err = m.Resume(ctx)
	assert.ErrorIs(t, err, common.ErrNoSession)
}

func TestEnd_RemovesPointer(t *testing.T) {
	m, d, store := setup(t)
	ctx := context.Background()

	account, err := d.Register(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	require.NoError(t, m.Start(ctx, account))

	require.NoError(t, m.End(ctx))

	_, ok, err := store.Get(ctx, storage.KeySession)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = m.Resume(ctx)
	assert.ErrorIs(t, err, common.ErrNoSession)
}

func TestResume_Corrupt(t *testing.T) {
	m, _, store := setup(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeySession, "{broken"))

	_, err := m.Resume(ctx)
	assert.ErrorIs(t, err, common.ErrStorageCorrupt)
}
