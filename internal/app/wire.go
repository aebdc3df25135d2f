package app

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"crinkbot/internal/chart"
	"crinkbot/internal/collectionlog"
	"crinkbot/internal/reddit"
	"crinkbot/internal/services/command"
	"crinkbot/internal/services/dispatch"
	"crinkbot/internal/store"
	"crinkbot/internal/transport/discord"
)

// Wire bundles the constructed dependency graph.
type Wire struct {
	Icons       *store.IconStore
	Reddit      *reddit.Client
	Records     *collectionlog.Client
	Charts      chart.Renderer
	Interpreter *command.Interpreter
	Transport   *discord.Transport
	Dispatcher  *dispatch.Service
	HTTP        *http.Client
}

// NewWire constructs the dependency graph from cfg. Any failure here is a
// FatalStartup error.
func NewWire(ctx context.Context, cfg Config, log *zap.Logger) (*Wire, error) {
	if log == nil {
		log = zap.NewNop()
	}

	icons, err := store.LoadIcons(cfg.IconsPath)
	if err != nil {
		return nil, err
	}
	log.Info("icons loaded", zap.String("path", cfg.IconsPath), zap.Int("count", icons.Len()))

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	rc := reddit.NewAuthenticated(ctx, cfg.RedditAPIURL, reddit.Credentials{
		ClientID:     cfg.RedditClientID,
		ClientSecret: cfg.RedditClientSecret,
		TokenURL:     cfg.RedditTokenURL,
	}, httpClient, cfg.UserAgent)
	records := collectionlog.New(cfg.CollectionLogURL, httpClient)
	charts := chart.Renderer{TempDir: cfg.TempDir}

	interp := command.New(log.Named("command"), rc, records, icons, charts)

	tr, err := discord.New(log.Named("discord"), cfg.DiscordToken, cfg.Status)
	if err != nil {
		return nil, err
	}
	disp := dispatch.New(log.Named("dispatch"), tr, interp, cfg.Workers)

	return &Wire{
		Icons:       icons,
		Reddit:      rc,
		Records:     records,
		Charts:      charts,
		Interpreter: interp,
		Transport:   tr,
		Dispatcher:  disp,
		HTTP:        httpClient,
	}, nil
}
