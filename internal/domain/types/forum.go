package types

import (
	"net/url"
	"path"
	"strings"
)

// Subreddit is the resolved forum community a findme command targets.
type Subreddit struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// Post is a single listing entry returned by the forum API.
type Post struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Permalink string `json:"permalink"`
}

// IsImage reports whether the post links directly to a jpg or png file.
func (p Post) IsImage() bool {
	u, err := url.Parse(p.URL)
	if err != nil {
		return false
	}
	switch strings.ToLower(path.Ext(u.Path)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}
