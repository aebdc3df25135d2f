package collectionlog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"crinkbot/internal/domain"
)

const DefaultBaseURL = "https://api.collectionlog.net"

// Client fetches collection log records over HTTP.
type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string, httpClient *http.Client) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: httpClient}
}

type recentResponse struct {
	Items []recentItem `json:"items"`
}

type recentItem struct {
	ID         flexID `json:"id"`
	Name       string `json:"name"`
	ObtainedAt string `json:"obtainedAt"`
}

// flexID accepts both 4151 and "4151".
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("item id: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

// Recent returns the most recently obtained collection log item for username.
func (c *Client) Recent(ctx context.Context, username string) (domain.CollectionItem, error) {
	if strings.TrimSpace(username) == "" {
		return domain.CollectionItem{}, domain.NewError(domain.CodeInvalidArgument, "username is required")
	}
	u := c.Base + "/items/recent/" + url.PathEscape(username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.CollectionItem{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain.CollectionItem{}, unavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.CollectionItem{}, notFound(username)
	}
	if resp.StatusCode/100 != 2 {
		return domain.CollectionItem{}, unavailable(fmt.Errorf("get %s: %s", u, resp.Status))
	}

	var body recentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.CollectionItem{}, unavailable(err)
	}
	if len(body.Items) == 0 {
		return domain.CollectionItem{}, notFound(username)
	}
	it := body.Items[0]
	return domain.CollectionItem{
		ID:         domain.ItemID(it.ID),
		Name:       it.Name,
		ObtainedAt: it.ObtainedAt,
	}, nil
}

func notFound(username string) error {
	return domain.NewError(domain.CodeNotFound, "no collection log found for %s", username)
}

func unavailable(cause error) error {
	return domain.WrapError(domain.CodeRemoteUnavailable, cause, "collectionlog is unavailable")
}

var _ domain.RecordClient = (*Client)(nil)
