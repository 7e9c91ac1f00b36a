package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mattdh/lic-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lic", "config.toml")

	repo, err := NewRepository(path)
	require.NoError(t, err)

	session, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAPIURL, session.APIURL)
	assert.Empty(t, session.Username)
	assert.Empty(t, session.Token)
	assert.False(t, session.AnonymousReads)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), domain.DefaultAPIURL)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	repo, err := NewRepository(path)
	require.NoError(t, err)

	want := domain.Session{
		APIURL:         "http://127.0.0.1:8080",
		Username:       "alice",
		Token:          "tok-123",
		AnonymousReads: true,
	}
	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFallsBackToDefaultURLWhenFileHasNone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("username = 'alice'\n"), 0o600))

	repo, err := NewRepository(path)
	require.NoError(t, err)

	session, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAPIURL, session.APIURL)
	assert.Equal(t, "alice", session.Username)
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("api_url = 'http://filed.example'\nusername = 'alice'\n"), 0o600))

	t.Setenv("LIC_API_URL", "http://enved.example")
	t.Setenv("LIC_API_TOKEN", "tok-env")

	repo, err := NewRepository(path)
	require.NoError(t, err)

	session, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "http://enved.example", session.APIURL)
	assert.Equal(t, "tok-env", session.Token)
	assert.Equal(t, "alice", session.Username, "unset env vars leave file values alone")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("username = [broken"), 0o600))

	repo, err := NewRepository(path)
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	require.Error(t, err)
}

func TestSaveReplacesExistingFileAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	repo, err := NewRepository(path)
	require.NoError(t, err)

	first := domain.DefaultSession().WithLogin("alice", "tok-1")
	require.NoError(t, repo.Save(context.Background(), first))

	second := first.WithLogin("alice", "tok-2")
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", got.Token)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}
