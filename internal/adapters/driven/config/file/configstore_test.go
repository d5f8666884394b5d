package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
)

func TestNewStore_MissingFileYieldsDefaults(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	cfg := store.Config()
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 300*time.Millisecond, cfg.Quiet())
}

func TestNewStore_LoadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	content := `catalog_url = "https://catalog.example"
page_size = 12
user_id = "user-1"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0600))

	store, err := NewStore(dir)
	require.NoError(t, err)

	cfg := store.Config()
	assert.Equal(t, "https://catalog.example", cfg.CatalogURL)
	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, "user-1", cfg.UserID)
	assert.Equal(t, Default().AssetURL, cfg.AssetURL, "unset fields keep defaults")
}

func TestNewStore_MalformedFileRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not toml"), 0600))

	_, err := NewStore(dir)
	assert.Error(t, err)
}

func TestStore_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	store.Update(func(c *Config) {
		c.PageSize = 50
		c.UserID = "user-2"
	})
	require.NoError(t, store.Save())

	reloaded, err := NewStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 50, reloaded.Config().PageSize)
	assert.Equal(t, "user-2", reloaded.Config().UserID)
}

func TestStore_CreatesConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "marquee")

	_, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSessionStore_Current(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	store.Update(func(c *Config) { c.UserID = "user-1" })

	session, err := NewSessionStore(store).Current(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
}

func TestSessionStore_NoUserConfigured(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = NewSessionStore(store).Current(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	changed := make(chan Config, 4)
	w, err := Watch(store, func(cfg Config) { changed <- cfg })
	require.NoError(t, err)
	defer w.Close()

	content := `page_size = 7` + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0600))

	select {
	case cfg := <-changed:
		assert.Equal(t, 7, cfg.PageSize)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher never fired")
	}
	assert.Equal(t, 7, store.Config().PageSize)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	changed := make(chan Config, 4)
	w, err := Watch(store, func(cfg Config) { changed <- cfg })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600))

	select {
	case <-changed:
		t.Fatal("unrelated file must not trigger a reload")
	case <-time.After(200 * time.Millisecond):
	}
}
