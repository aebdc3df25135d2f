package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"crinkbot/internal/domain"
	"crinkbot/internal/store"
)

// Config holds every runtime setting. Zero values are never valid; use Load.
type Config struct {
	RedditClientID     string `env:"REDDIT_CLIENT_ID,required,notEmpty"`
	RedditClientSecret string `env:"REDDIT_CLIENT_SECRET,required,notEmpty"`
	DiscordToken       string `env:"DISCORD_CLIENT_TOKEN,required,notEmpty"`

	IconsPath        string        `env:"CRINKBOT_ICONS_PATH" envDefault:"data/item-icons.json"`
	UserAgent        string        `env:"CRINKBOT_USER_AGENT" envDefault:"crink-bot"`
	RedditAPIURL     string        `env:"CRINKBOT_REDDIT_API_URL" envDefault:"https://oauth.reddit.com"`
	RedditTokenURL   string        `env:"CRINKBOT_REDDIT_TOKEN_URL" envDefault:"https://www.reddit.com/api/v1/access_token"`
	CollectionLogURL string        `env:"CRINKBOT_COLLECTION_LOG_URL" envDefault:"https://api.collectionlog.net"`
	HTTPTimeout      time.Duration `env:"CRINKBOT_HTTP_TIMEOUT" envDefault:"10s"`
	Workers          int           `env:"CRINKBOT_WORKERS" envDefault:"8"`
	TempDir          string        `env:"CRINKBOT_TEMP_DIR"`
	Status           string        `env:"CRINKBOT_STATUS" envDefault:"^help"`
}

// LoadOptions says where Load looks for settings besides the environment.
type LoadOptions struct {
	EnvFile     string // dotenv file; a missing file is skipped
	SecretsFile string // sealed secrets file; "" disables
	Passphrase  string // passphrase for SecretsFile

	// Environ overrides os.Environ, mainly for tests.
	Environ []string
}

// Load builds a Config. Later sources win: .env, then sealed secrets, then
// the process environment. Keys from files are matched case-insensitively.
func Load(opts LoadOptions) (Config, error) {
	merged := map[string]string{}

	if opts.EnvFile != "" {
		vals, err := godotenv.Read(opts.EnvFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, domain.WrapError(domain.CodeFatalStartup, err, "read %s", opts.EnvFile)
		default:
			mergeUpper(merged, vals)
		}
	}

	if opts.SecretsFile != "" {
		vals, err := store.OpenSecrets(opts.SecretsFile, opts.Passphrase)
		if err != nil {
			return Config{}, domain.WrapError(domain.CodeFatalStartup, err, "open secrets")
		}
		mergeUpper(merged, vals)
	}

	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}
	for k, v := range env.ToMap(environ) {
		merged[k] = v
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: merged}); err != nil {
		if keys := missingKeys(err); len(keys) > 0 {
			return Config{}, domain.NewError(domain.CodeFatalStartup,
				"missing required configuration: %s", strings.Join(keys, ", "))
		}
		return Config{}, domain.WrapError(domain.CodeFatalStartup, err, "parse configuration")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings env tags cannot express.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return domain.NewError(domain.CodeFatalStartup, "CRINKBOT_WORKERS must be at least 1, got %d", c.Workers)
	}
	if c.HTTPTimeout <= 0 {
		return domain.NewError(domain.CodeFatalStartup, "CRINKBOT_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}

func mergeUpper(dst, src map[string]string) {
	for k, v := range src {
		dst[strings.ToUpper(k)] = v
	}
}

func missingKeys(err error) []string {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return nil
	}
	var keys []string
	for _, e := range agg.Errors {
		var unset env.VarIsNotSetError
		var empty env.EmptyVarError
		switch {
		case errors.As(e, &unset):
			keys = append(keys, unset.Key)
		case errors.As(e, &empty):
			keys = append(keys, empty.Key)
		}
	}
	sort.Strings(keys)
	return keys
}

// SecretKeys are the settings worth sealing.
var SecretKeys = []string{"REDDIT_CLIENT_ID", "REDDIT_CLIENT_SECRET", "DISCORD_CLIENT_TOKEN"}

// ReadEnvFile returns the dotenv file at path with upper-cased keys.
func ReadEnvFile(path string) (map[string]string, error) {
	vals, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	out := make(map[string]string, len(vals))
	mergeUpper(out, vals)
	return out, nil
}
