package collectionlog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crinkbot/internal/collectionlog"
	"crinkbot/internal/domain"
)

func serve(t *testing.T, h http.HandlerFunc) *collectionlog.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return collectionlog.New(srv.URL, srv.Client())
}

func TestRecent_NumericID(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/recent/zezima", r.URL.Path)
		_, _ = w.Write([]byte(`{"items":[
			{"id":4151,"name":"Abyssal whip","obtainedAt":"2024-03-01T12:00:00.000Z"},
			{"id":11840,"name":"Dragon boots","obtainedAt":"2024-02-01T12:00:00.000Z"}]}`))
	})

	item, err := c.Recent(context.Background(), "zezima")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemID("4151"), item.ID)
	assert.Equal(t, "Abyssal whip", item.Name)
	assert.Equal(t, "2024-03-01", item.ObtainedDate())
}

func TestRecent_StringIDAndEscapedName(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/recent/iron%20man", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"items":[{"id":"995","name":"Coins","obtainedAt":"2023-01-02T00:00:00Z"}]}`))
	})

	item, err := c.Recent(context.Background(), "iron man")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemID("995"), item.ID)
}

func TestRecent_NotFound(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"404": func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		},
		"empty": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"items":[]}`))
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := serve(t, h).Recent(context.Background(), "nobody")
			require.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestRecent_RemoteUnavailable(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"500": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		},
		"garbage": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := serve(t, h).Recent(context.Background(), "zezima")
			require.ErrorIs(t, err, domain.ErrRemoteUnavailable)
		})
	}
}

func TestRecent_EmptyUsername(t *testing.T) {
	c := collectionlog.New("http://127.0.0.1:0", nil)
	_, err := c.Recent(context.Background(), "  ")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}
