package cache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hbjs97/venvx/internal/cache"
	"github.com/hbjs97/venvx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidJSON(t *testing.T) {
	content := `{
		"version": 1,
		"entries": {
			"/home/test/project": {
				"requirements_hash": "a1b2c3d4",
				"python": "python3.12",
				"installed_at": "2026-08-14T10:30:00Z"
			}
		}
	}`
	path := testutil.TempCacheFile(t, content)

	c, err := cache.Load(path)

	require.NoError(t, err)
	assert.Len(t, c.Entries, 1)
	assert.Equal(t, "python3.12", c.Entries["/home/test/project"].Python)
}

func TestLoad_MissingFileReturnsEmpty(t *testing.T) {
	c, err := cache.Load("/nonexistent/cache.json")

	require.NoError(t, err)
	assert.Empty(t, c.Entries)
}

func TestLoad_CorruptJSONReturnsEmpty(t *testing.T) {
	path := testutil.TempCacheFile(t, "{not json")

	c, err := cache.Load(path)

	require.NoError(t, err)
	assert.Empty(t, c.Entries)
}

func TestLookup_HitAndMiss(t *testing.T) {
	c := cache.New()
	c.Set("/p", cache.Entry{
		RequirementsHash: "abc",
		Python:           "python3",
		InstalledAt:      time.Now().Format(time.RFC3339),
	})

	_, ok := c.Lookup("/p", "abc", 30)
	assert.True(t, ok)

	// 해시 불일치 → miss
	_, ok = c.Lookup("/p", "def", 30)
	assert.False(t, ok)

	// 없는 키 → miss
	_, ok = c.Lookup("/other", "abc", 30)
	assert.False(t, ok)
}

func TestLookup_ExpiredTTL(t *testing.T) {
	c := cache.New()
	c.Set("/p", cache.Entry{
		RequirementsHash: "abc",
		InstalledAt:      time.Now().Add(-31 * 24 * time.Hour).Format(time.RFC3339),
	})

	_, ok := c.Lookup("/p", "abc", 30)
	assert.False(t, ok)
}

func TestInvalidate(t *testing.T) {
	c := cache.New()
	c.Set("/p", cache.Entry{RequirementsHash: "abc", InstalledAt: time.Now().Format(time.RFC3339)})

	c.Invalidate("/p")

	_, ok := c.Lookup("/p", "abc", 30)
	assert.False(t, ok)
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "cache.json")

	c := cache.New()
	c.Set("/p", cache.Entry{RequirementsHash: "abc", Python: "python3", InstalledAt: "2026-08-14T10:30:00Z"})
	require.NoError(t, c.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := cache.Load(path)
	require.NoError(t, err)
	assert.Equal(t, c.Entries, loaded.Entries)
}
