package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"crinkbot/internal/domain"
)

const (
	DefaultAPIURL   = "https://oauth.reddit.com"
	DefaultTokenURL = "https://www.reddit.com/api/v1/access_token"

	// WindowMonth is the listing window findme uses.
	WindowMonth = "month"

	// pageSize is the largest page Reddit serves per listing request.
	pageSize = 100
)

var subredditName = regexp.MustCompile(`^[A-Za-z0-9_]{2,21}$`)

// Credentials configure the app-only OAuth2 exchange.
type Credentials struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
}

// Client talks to the Reddit JSON API.
type Client struct {
	Base      string
	HTTP      *http.Client
	UserAgent string
}

// New returns a client that sends requests through httpClient as is.
func New(base string, httpClient *http.Client, userAgent string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, HTTP: httpClient, UserAgent: userAgent}
}

// NewAuthenticated returns a client whose requests carry a bearer token
// obtained with creds. Token requests reuse httpClient's transport and
// timeout and carry the same User-Agent, which Reddit requires.
func NewAuthenticated(ctx context.Context, base string, creds Credentials, httpClient *http.Client, userAgent string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	next := httpClient.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	tokenHTTP := &http.Client{
		Transport: &userAgentTransport{agent: userAgent, next: next},
		Timeout:   httpClient.Timeout,
	}
	tokenURL := creds.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	cc := clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	authed := cc.Client(context.WithValue(ctx, oauth2.HTTPClient, tokenHTTP))
	authed.Timeout = httpClient.Timeout
	return New(base, authed, userAgent)
}

// Subreddit resolves name to its canonical display name.
func (c *Client) Subreddit(ctx context.Context, name string) (domain.Subreddit, error) {
	if !subredditName.MatchString(name) {
		return domain.Subreddit{}, notFound(name)
	}
	var out thing[subredditData]
	if err := c.getJSON(ctx, "/r/"+url.PathEscape(name)+"/about", nil, &out); err != nil {
		if domain.ErrorCode(err) == domain.CodeNotFound {
			return domain.Subreddit{}, notFound(name)
		}
		return domain.Subreddit{}, err
	}
	if out.Kind != kindSubreddit || out.Data.DisplayName == "" {
		return domain.Subreddit{}, notFound(name)
	}
	return domain.Subreddit{Name: name, DisplayName: out.Data.DisplayName}, nil
}

// TopPosts returns up to limit posts from the top listing of name over window.
func (c *Client) TopPosts(ctx context.Context, name, window string, limit int) ([]domain.Post, error) {
	if !subredditName.MatchString(name) {
		return nil, notFound(name)
	}
	if limit <= 0 {
		return nil, domain.NewError(domain.CodeInvalidArgument, "post limit must be positive, got %d", limit)
	}

	posts := make([]domain.Post, 0, min(limit, pageSize))
	after := ""
	for len(posts) < limit {
		q := url.Values{}
		q.Set("t", window)
		q.Set("limit", strconv.Itoa(min(limit-len(posts), pageSize)))
		q.Set("raw_json", "1")
		if after != "" {
			q.Set("after", after)
		}

		var page thing[listingData]
		if err := c.getJSON(ctx, "/r/"+url.PathEscape(name)+"/top", q, &page); err != nil {
			if domain.ErrorCode(err) == domain.CodeNotFound {
				return nil, notFound(name)
			}
			return nil, err
		}
		for _, child := range page.Data.Children {
			if len(posts) == limit {
				break
			}
			posts = append(posts, domain.Post{
				Title:     child.Data.Title,
				URL:       child.Data.URL,
				Permalink: child.Data.Permalink,
			})
		}
		after = page.Data.After
		if after == "" || len(page.Data.Children) == 0 {
			break
		}
	}
	return posts, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.Base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain.WrapError(domain.CodeRemoteUnavailable, err, "reddit is unavailable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusForbidden:
		return domain.NewError(domain.CodeNotFound, "reddit get %s: %s", path, resp.Status)
	case resp.StatusCode/100 != 2:
		return domain.WrapError(domain.CodeRemoteUnavailable,
			fmt.Errorf("reddit get %s: %s", path, resp.Status), "reddit is unavailable")
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.WrapError(domain.CodeRemoteUnavailable, err, "reddit returned an unreadable response")
	}
	return nil
}

func notFound(name string) error {
	return domain.NewError(domain.CodeNotFound, "subreddit r/%s was not found", name)
}

type userAgentTransport struct {
	agent string
	next  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.agent)
	return t.next.RoundTrip(r)
}

var _ domain.ForumClient = (*Client)(nil)
