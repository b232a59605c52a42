package vault

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lockbox/internal/common"
	"github.com/dmitrijs2005/lockbox/internal/logging"
	"github.com/dmitrijs2005/lockbox/internal/models"
	"github.com/dmitrijs2005/lockbox/internal/storage"
)

const testAccountID = int64(1001)

func setupVault(t *testing.T) (*Vault, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	v, err := Open(context.Background(), store, testAccountID, false, logging.NewDefault("error"))
	require.NoError(t, err)
	return v, store
}

func sampleFields() models.CredentialFields {
	return models.CredentialFields{
		Website:     "https://github.com",
		AccountName: "GitHub",
		Username:    "octocat",
		Password:    "Sup3rSecret!",
		Category:    models.CategoryWork,
		Notes:       "work account",
	}
}

func TestOpen_EmptyWithoutSeed(t *testing.T) {
	v, store := setupVault(t)

	assert.Empty(t, v.Credentials())

	// nothing persisted for an empty, unseeded vault
	_, ok, err := store.Get(context.Background(), "passwords_1001")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpen_SeedsDemoDataOnce(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	v, err := Open(ctx, store, testAccountID, true, logging.NewDefault("error"))
	require.NoError(t, err)
	require.Len(t, v.Credentials(), 3)

	raw, ok, err := store.Get(ctx, "passwords_1001")
	require.NoError(t, err)
	require.True(t, ok, "seeded collection is persisted immediately")
	assert.Contains(t, raw, "user@google.com")

	// a second open reads the persisted collection instead of reseeding
	require.NoError(t, v.Delete(ctx, v.Credentials()[0].ID))
	v2, err := Open(ctx, store, testAccountID, true, logging.NewDefault("error"))
	require.NoError(t, err)
	assert.Len(t, v2.Credentials(), 2)
}

func TestCreate_RoundTrip(t *testing.T) {
	v, store := setupVault(t)
	ctx := context.Background()

	created, err := v.Create(ctx, sampleFields())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.Favorite)
	assert.Equal(t, "🐙", created.Icon)

	// fresh read from storage yields an equal record
	v2, err := Open(ctx, store, testAccountID, false, logging.NewDefault("error"))
	require.NoError(t, err)
	require.Len(t, v2.Credentials(), 1)
	assert.Equal(t, *created, v2.Credentials()[0])
}

func TestCreate_UniqueIDs(t *testing.T) {
	v, _ := setupVault(t)
	ctx := context.Background()

	seen := make(map[int64]struct{})
	for i := 0; i < 5; i++ {
		c, err := v.Create(ctx, sampleFields())
		require.NoError(t, err)
		_, dup := seen[c.ID]
		require.False(t, dup, "duplicate id %d", c.ID)
		seen[c.ID] = struct{}{}
	}
}

func TestUpdate(t *testing.T) {
	v, store := setupVault(t)
	ctx := context.Background()

	created, err := v.Create(ctx, sampleFields())
	require.NoError(t, err)
	_, err = v.ToggleFavorite(ctx, created.ID)
	require.NoError(t, err)

	fields := sampleFields()
	fields.Website = "https://spotify.com"
	fields.AccountName = "Spotify"
	fields.Category = models.CategoryOther
	require.NoError(t, v.Update(ctx, created.ID, fields))

	got, err := v.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID, "id survives the edit")
	assert.Equal(t, "Spotify", got.AccountName)
	assert.Equal(t, "🎵", got.Icon, "icon follows the new website")
	assert.True(t, got.Favorite, "favorite flag survives the edit")

	// change is flushed, not just in memory
	v2, err := Open(ctx, store, testAccountID, false, logging.NewDefault("error"))
	require.NoError(t, err)
	assert.Equal(t, "Spotify", v2.Credentials()[0].AccountName)
}

func TestUpdate_NotFound(t *testing.T) {
	v, _ := setupVault(t)
	err := v.Update(context.Background(), 404, sampleFields())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_TwiceFailsSecondTime(t *testing.T) {
	v, _ := setupVault(t)
	ctx := context.Background()

	created, err := v.Create(ctx, sampleFields())
	require.NoError(t, err)

	require.NoError(t, v.Delete(ctx, created.ID))
	err = v.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestToggleFavorite_DoubleApplicationRestores(t *testing.T) {
	v, store := setupVault(t)
	ctx := context.Background()

	created, err := v.Create(ctx, sampleFields())
	require.NoError(t, err)

	on, err := v.ToggleFavorite(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, on)

	// intermediate state is persisted
	mid, err := Open(ctx, store, testAccountID, false, logging.NewDefault("error"))
	require.NoError(t, err)
	assert.True(t, mid.Credentials()[0].Favorite)

	off, err := v.ToggleFavorite(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, off)

	final, err := Open(ctx, store, testAccountID, false, logging.NewDefault("error"))
	require.NoError(t, err)
	assert.False(t, final.Credentials()[0].Favorite)
}

func TestToggleFavorite_NotFound(t *testing.T) {
	v, _ := setupVault(t)
	_, err := v.ToggleFavorite(context.Background(), 404)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreate_InvalidCategoryStoredAsOther(t *testing.T) {
	v, _ := setupVault(t)

	fields := sampleFields()
	fields.Category = models.Category("favorites")
	created, err := v.Create(context.Background(), fields)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, created.Category)
}

func TestOpen_Corrupt(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "passwords_1001", "[broken"))

	_, err := Open(ctx, store, testAccountID, false, logging.NewDefault("error"))
	assert.ErrorIs(t, err, common.ErrStorageCorrupt)
}

func TestVaultsAreScopedPerAccount(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	log := logging.NewDefault("error")

	v1, err := Open(ctx, store, 1, false, log)
	require.NoError(t, err)
	_, err = v1.Create(ctx, sampleFields())
	require.NoError(t, err)

	v2, err := Open(ctx, store, 2, false, log)
	require.NoError(t, err)
	assert.Empty(t, v2.Credentials(), "no cross-account sharing")
}
