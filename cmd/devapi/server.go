package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type memoryStore struct {
	mu         sync.RWMutex
	subreddits map[string]seedSubreddit
	players    map[string][]seedItem
	tokens     map[string]bool
}

func newMemoryStore(s seed) *memoryStore {
	ms := &memoryStore{
		subreddits: make(map[string]seedSubreddit),
		players:    s.Players,
		tokens:     make(map[string]bool),
	}
	for _, sub := range s.Subreddits {
		ms.subreddits[strings.ToLower(sub.Name)] = sub
	}
	return ms
}

func (ms *memoryStore) issueToken() string {
	tok := uuid.NewString()
	ms.mu.Lock()
	ms.tokens[tok] = true
	ms.mu.Unlock()
	return tok
}

func (ms *memoryStore) validToken(r *http.Request) bool {
	tok, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return false
	}
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.tokens[tok]
}

func (ms *memoryStore) subreddit(name string) (seedSubreddit, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	sub, ok := ms.subreddits[strings.ToLower(name)]
	return sub, ok
}

func (ms *memoryStore) items(username string) ([]seedItem, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	items, ok := ms.players[strings.ToLower(username)]
	return items, ok
}

type thing struct {
	Kind string `json:"kind"`
	Data any    `json:"data"`
}

func newHandler(ms *memoryStore, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/access_token", func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := r.BasicAuth(); !ok {
			writeError(w, http.StatusUnauthorized, "basic auth required")
			return
		}
		if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "client_credentials" {
			writeError(w, http.StatusBadRequest, "unsupported_grant_type")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": ms.issueToken(),
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	})

	mux.HandleFunc("GET /r/{name}/about", func(w http.ResponseWriter, r *http.Request) {
		if !ms.validToken(r) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		sub, ok := ms.subreddit(r.PathValue("name"))
		if !ok {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeJSON(w, http.StatusOK, thing{Kind: "t5", Data: map[string]string{"display_name": sub.Name}})
	})

	mux.HandleFunc("GET /r/{name}/top", func(w http.ResponseWriter, r *http.Request) {
		if !ms.validToken(r) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		sub, ok := ms.subreddit(r.PathValue("name"))
		if !ok {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		q := r.URL.Query()
		limit, err := strconv.Atoi(q.Get("limit"))
		if err != nil || limit < 1 || limit > 100 {
			limit = 25
		}
		start := 0
		if after := q.Get("after"); after != "" {
			n, err := strconv.Atoi(strings.TrimPrefix(after, "t3_"))
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "bad cursor")
				return
			}
			start = min(n, len(sub.Posts))
		}
		end := min(start+limit, len(sub.Posts))

		children := make([]thing, 0, end-start)
		for _, p := range sub.Posts[start:end] {
			children = append(children, thing{Kind: "t3", Data: p})
		}
		var next any
		if end < len(sub.Posts) {
			next = "t3_" + strconv.Itoa(end)
		}
		writeJSON(w, http.StatusOK, thing{Kind: "Listing", Data: map[string]any{
			"after":    next,
			"children": children,
		}})
	})

	mux.HandleFunc("GET /items/recent/{username}", func(w http.ResponseWriter, r *http.Request) {
		items, ok := ms.items(r.PathValue("username"))
		if !ok {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})
	})

	return accessLog(mux, log)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

func accessLog(next http.Handler, log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Int("status", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("duration", time.Since(start)))
	})
}
