package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lockbox/internal/common"
	"github.com/dmitrijs2005/lockbox/internal/logging"
	"github.com/dmitrijs2005/lockbox/internal/storage"
)

func setupDirectory(t *testing.T) (*Directory, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	d := NewDirectory(store, SchemeLegacy, logging.NewDefault("error"))
	return d, store
}

func TestRegisterThenLogin(t *testing.T) {
	d, _ := setupDirectory(t)
	ctx := context.Background()

	created, err := d.Register(ctx, "Alice", "Alice@Example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.Email, "email is stored lower-cased")
	assert.NotZero(t, created.ID)
	assert.Equal(t, LegacyHash("hunter22"), created.PasswordHash)

	// login is case-insensitive on email
	got, err := d.Login(ctx, "ALICE@example.COM", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Email, got.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	d, store := setupDirectory(t)
	ctx := context.Background()

	_, err := d.Register(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	before, _, err := store.Get(ctx, storage.KeyUsers)
	require.NoError(t, err)

	_, err = d.Register(ctx, "Mallory", "ALICE@EXAMPLE.COM", "different")
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	// the directory is unchanged after the failed attempt
	after, _, err := store.Get(ctx, storage.KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLogin_Errors(t *testing.T) {
	d, _ := setupDirectory(t)
	ctx := context.Background()

	_, err := d.Login(ctx, "nobody@example.com", "x")
	assert.ErrorIs(t, err, common.ErrNoSuchAccount)

	_, err = d.Register(ctx, "Bob", "bob@example.com", "correct")
	require.NoError(t, err)

	_, err = d.Login(ctx, "bob@example.com", "incorrect")
	assert.ErrorIs(t, err, common.ErrBadPassword)
}

func TestLogin_LegacyAccountSurvivesSchemeSwitch(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	legacy := NewDirectory(store, SchemeLegacy, logging.NewDefault("error"))
	_, err := legacy.Register(ctx, "Old", "old@example.com", "pass-123")
	require.NoError(t, err)

	hardened := NewDirectory(store, SchemeBcrypt, logging.NewDefault("error"))
	_, err = hardened.Login(ctx, "old@example.com", "pass-123")
	require.NoError(t, err)

	created, err := hardened.Register(ctx, "New", "new@example.com", "pass-456")
	require.NoError(t, err)
	assert.Contains(t, created.PasswordHash, "$2")

	_, err = hardened.Login(ctx, "new@example.com", "pass-456")
	require.NoError(t, err)
}

func TestRegister_UniqueIDs(t *testing.T) {
	d, _ := setupDirectory(t)
	ctx := context.Background()

	a, err := d.Register(ctx, "A", "a@example.com", "pass-1")
	require.NoError(t, err)
	b, err := d.Register(ctx, "B", "b@example.com", "pass-2")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestLoadAccounts_Corrupt(t *testing.T) {
	d, store := setupDirectory(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeyUsers, "{not json"))

	_, err := d.Login(ctx, "a@example.com", "x")
	assert.ErrorIs(t, err, common.ErrStorageCorrupt)
}
