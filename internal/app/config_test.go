package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crinkbot/internal/app"
	"crinkbot/internal/domain"
	"crinkbot/internal/store"
)

func writeEnvFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingKeys(t *testing.T) {
	_, err := app.Load(app.LoadOptions{Environ: []string{"REDDIT_CLIENT_ID=abc"}})
	require.ErrorIs(t, err, domain.ErrFatalStartup)
	assert.Contains(t, err.Error(), "DISCORD_CLIENT_TOKEN")
	assert.Contains(t, err.Error(), "REDDIT_CLIENT_SECRET")
	assert.NotContains(t, err.Error(), "REDDIT_CLIENT_ID")
}

func TestLoad_EmptyKey(t *testing.T) {
	_, err := app.Load(app.LoadOptions{Environ: []string{
		"REDDIT_CLIENT_ID=abc", "REDDIT_CLIENT_SECRET=", "DISCORD_CLIENT_TOKEN=tok",
	}})
	require.ErrorIs(t, err, domain.ErrFatalStartup)
	assert.Contains(t, err.Error(), "REDDIT_CLIENT_SECRET")
}

func TestLoad_DefaultsFromLegacyDotenv(t *testing.T) {
	path := writeEnvFile(t, "reddit_client_id=id\nreddit_client_secret=secret\ndiscord_client_token=tok\n")

	cfg, err := app.Load(app.LoadOptions{EnvFile: path, Environ: []string{}})
	require.NoError(t, err)

	assert.Equal(t, "id", cfg.RedditClientID)
	assert.Equal(t, "secret", cfg.RedditClientSecret)
	assert.Equal(t, "tok", cfg.DiscordToken)
	assert.Equal(t, "data/item-icons.json", cfg.IconsPath)
	assert.Equal(t, "crink-bot", cfg.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "^help", cfg.Status)
}

func TestLoad_Precedence(t *testing.T) {
	envFile := writeEnvFile(t, "REDDIT_CLIENT_ID=dotenv\nREDDIT_CLIENT_SECRET=dotenv\nDISCORD_CLIENT_TOKEN=dotenv\n")
	secrets := filepath.Join(t.TempDir(), "secrets.sealed")
	require.NoError(t, store.SealSecrets(secrets, "pw", map[string]string{
		"REDDIT_CLIENT_SECRET": "sealed",
		"DISCORD_CLIENT_TOKEN": "sealed",
	}))

	cfg, err := app.Load(app.LoadOptions{
		EnvFile:     envFile,
		SecretsFile: secrets,
		Passphrase:  "pw",
		Environ:     []string{"DISCORD_CLIENT_TOKEN=process"},
	})
	require.NoError(t, err)

	assert.Equal(t, "dotenv", cfg.RedditClientID)
	assert.Equal(t, "sealed", cfg.RedditClientSecret)
	assert.Equal(t, "process", cfg.DiscordToken)
}

func TestLoad_MissingEnvFileIsSkipped(t *testing.T) {
	cfg, err := app.Load(app.LoadOptions{
		EnvFile: filepath.Join(t.TempDir(), "absent.env"),
		Environ: []string{"REDDIT_CLIENT_ID=a", "REDDIT_CLIENT_SECRET=b", "DISCORD_CLIENT_TOKEN=c", "CRINKBOT_WORKERS=2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoad_WrongPassphrase(t *testing.T) {
	secrets := filepath.Join(t.TempDir(), "secrets.sealed")
	require.NoError(t, store.SealSecrets(secrets, "right", map[string]string{"A": "b"}))

	_, err := app.Load(app.LoadOptions{SecretsFile: secrets, Passphrase: "wrong", Environ: []string{}})
	require.ErrorIs(t, err, domain.ErrFatalStartup)
}

func TestLoad_InvalidValues(t *testing.T) {
	base := []string{"REDDIT_CLIENT_ID=a", "REDDIT_CLIENT_SECRET=b", "DISCORD_CLIENT_TOKEN=c"}
	for _, extra := range []string{"CRINKBOT_WORKERS=0", "CRINKBOT_WORKERS=many", "CRINKBOT_HTTP_TIMEOUT=-1s"} {
		t.Run(extra, func(t *testing.T) {
			_, err := app.Load(app.LoadOptions{Environ: append(append([]string{}, base...), extra)})
			require.ErrorIs(t, err, domain.ErrFatalStartup)
		})
	}
}

func TestReadEnvFile(t *testing.T) {
	path := writeEnvFile(t, "discord_client_token=tok\n")
	vals, err := app.ReadEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"DISCORD_CLIENT_TOKEN": "tok"}, vals)
}
