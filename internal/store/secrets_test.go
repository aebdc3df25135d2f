package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crinkbot/internal/store"
)

func TestSecrets_SealOpen_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.enc")
	in := map[string]string{
		"DISCORD_CLIENT_TOKEN": "token",
		"REDDIT_CLIENT_ID":     "id",
	}

	require.NoError(t, store.SealSecrets(path, "correct horse", in))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "token")

	out, err := store.OpenSecrets(path, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSecrets_WrongPassphrase_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.enc")
	require.NoError(t, store.SealSecrets(path, "correct", map[string]string{"A": "b"}))

	_, err := store.OpenSecrets(path, "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong passphrase")
}

func TestSecrets_EmptyPassphraseRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.enc")
	require.Error(t, store.SealSecrets(path, "", map[string]string{"A": "b"}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
