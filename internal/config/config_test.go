package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/venvx/internal/config"
	"github.com/hbjs97/venvx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidTOML(t *testing.T) {
	root := testutil.TempProject(t)
	testutil.WriteManifest(t, root, `version = 1
env_dir = "env"
python = "python3.12"
requirements = "requirements-dev.txt"
entry = "app.py"
cache_ttl_days = 7
`)

	cfg, err := config.Load(root)

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "env", cfg.EnvDir)
	assert.Equal(t, "python3.12", cfg.Python)
	assert.Equal(t, "requirements-dev.txt", cfg.Requirements)
	assert.Equal(t, "app.py", cfg.Entry)
	assert.Equal(t, 7, cfg.CacheTTLDays)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	root := testutil.TempProject(t)

	cfg, err := config.Load(root)

	require.NoError(t, err)
	assert.Equal(t, ".venv", cfg.EnvDir)
	assert.Equal(t, "python3", cfg.Python)
	assert.Equal(t, "requirements.txt", cfg.Requirements)
	assert.Equal(t, "main.py", cfg.Entry)
	assert.Equal(t, 30, cfg.CacheTTLDays)
}

func TestLoad_PartialManifestFillsDefaults(t *testing.T) {
	root := testutil.TempProject(t)
	testutil.WriteManifest(t, root, `entry = "fetch.py"`)

	cfg, err := config.Load(root)

	require.NoError(t, err)
	assert.Equal(t, "fetch.py", cfg.Entry)
	assert.Equal(t, ".venv", cfg.EnvDir)
	assert.Equal(t, "python3", cfg.Python)
}

func TestLoad_InvalidTOML(t *testing.T) {
	root := testutil.TempProject(t)
	testutil.WriteManifest(t, root, "invalid toml [[[")

	_, err := config.Load(root)

	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoad_InvalidFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "absolute env_dir", content: `env_dir = "/opt/venv"`},
		{name: "env_dir escapes project", content: `env_dir = "../venv"`},
		{name: "env_dir escapes via inner segment", content: `env_dir = "envs/../../venv"`},
		{name: "python with arguments", content: `python = "python3 -X utf8"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := testutil.TempProject(t)
			testutil.WriteManifest(t, root, tt.content)

			_, err := config.Load(root)
			assert.ErrorIs(t, err, config.ErrConfig)
		})
	}
}

func TestLoad_EnvDirNameContainingDots(t *testing.T) {
	// ".."는 세그먼트일 때만 거부된다. 이름 일부인 경우는 유효하다.
	root := testutil.TempProject(t)
	testutil.WriteManifest(t, root, `env_dir = "my..env"`)

	cfg, err := config.Load(root)

	require.NoError(t, err)
	assert.Equal(t, "my..env", cfg.EnvDir)
}

func TestSave_WritesValidTOML(t *testing.T) {
	root := testutil.TempProject(t)
	cfg := &config.Config{
		Version:      1,
		EnvDir:       ".venv",
		Python:       "python3.12",
		Requirements: "requirements.txt",
		Entry:        "main.py",
		CacheTTLDays: 30,
	}

	err := config.Save(root, cfg)
	require.NoError(t, err)

	// 파일 권한 0600 확인
	info, err := os.Stat(filepath.Join(root, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := config.Load(root)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestExists(t *testing.T) {
	root := testutil.TempProject(t)
	assert.False(t, config.Exists(root))

	testutil.WriteManifest(t, root, `version = 1`)
	assert.True(t, config.Exists(root))
}
