package main

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"crinkbot/internal/collectionlog"
	"crinkbot/internal/domain"
	"crinkbot/internal/reddit"
)

func startDevAPI(t *testing.T) *httptest.Server {
	t.Helper()
	s, err := loadSeed("")
	require.NoError(t, err)
	srv := httptest.NewServer(newHandler(newMemoryStore(s), zaptest.NewLogger(t)))
	t.Cleanup(srv.Close)
	return srv
}

func TestDevAPI_Reddit(t *testing.T) {
	srv := startDevAPI(t)
	ctx := context.Background()
	c := reddit.NewAuthenticated(ctx, srv.URL, reddit.Credentials{
		ClientID:     "dev",
		ClientSecret: "dev",
		TokenURL:     srv.URL + "/api/v1/access_token",
	}, srv.Client(), "crink-bot-test")

	sub, err := c.Subreddit(ctx, "PICS")
	require.NoError(t, err)
	assert.Equal(t, "pics", sub.DisplayName)

	posts, err := c.TopPosts(ctx, "pics", reddit.WindowMonth, 2)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.True(t, posts[0].IsImage())

	all, err := c.TopPosts(ctx, "pics", reddit.WindowMonth, 100)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.False(t, all[2].IsImage())

	_, err = c.Subreddit(ctx, "nosuchplace")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDevAPI_RedditRequiresToken(t *testing.T) {
	srv := startDevAPI(t)
	c := reddit.New(srv.URL, srv.Client(), "crink-bot-test")

	_, err := c.Subreddit(context.Background(), "pics")
	require.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestDevAPI_CollectionLog(t *testing.T) {
	srv := startDevAPI(t)
	c := collectionlog.New(srv.URL, srv.Client())

	item, err := c.Recent(context.Background(), "iron man")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemID("995"), item.ID)
	assert.Equal(t, "2023-12-25", item.ObtainedDate())

	_, err = c.Recent(context.Background(), "nobody")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParseSeed(t *testing.T) {
	s, err := parseSeed([]byte("players:\n  Zezima:\n    - id: 1\n      name: x\n"))
	require.NoError(t, err)
	assert.Contains(t, s.Players, "zezima")

	_, err = parseSeed([]byte("subreddits: {"))
	require.Error(t, err)
}
