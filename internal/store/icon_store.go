package store

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"sort"
	"strings"

	"crinkbot/internal/domain"
)

// IconStore is the read-only item icon table. It is populated once by
// LoadIcons and never mutated afterwards, so lookups need no locking.
type IconStore struct {
	icons map[domain.ItemID][]byte
}

// LoadIcons reads a JSON object mapping item ids to base64 images and
// decodes every entry. A missing file, malformed JSON or any entry that is
// not valid base64 is a FatalStartup error.
func LoadIcons(path string) (*IconStore, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.WrapError(domain.CodeFatalStartup, err, "read icon dataset %s", path)
	}
	var raw map[string]string
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, domain.WrapError(domain.CodeFatalStartup, err, "parse icon dataset %s", path)
	}
	return NewIconStore(raw)
}

// NewIconStore decodes an in-memory id -> base64 table.
func NewIconStore(raw map[string]string) (*IconStore, error) {
	icons := make(map[domain.ItemID][]byte, len(raw))
	for id, enc := range raw {
		img, err := base64.StdEncoding.DecodeString(strings.TrimSpace(enc))
		if err != nil {
			return nil, domain.WrapError(domain.CodeFatalStartup, err, "decode icon %q", id)
		}
		icons[domain.ItemID(id)] = img
	}
	return &IconStore{icons: icons}, nil
}

// Lookup returns the decoded image for id, or a NotFound error.
func (s *IconStore) Lookup(id domain.ItemID) ([]byte, error) {
	img, ok := s.icons[id]
	if !ok {
		return nil, domain.NewError(domain.CodeNotFound, "no icon found for item %s", id)
	}
	return img, nil
}

// Len returns the number of icons loaded.
func (s *IconStore) Len() int { return len(s.icons) }

// IDs returns every icon id in ascending order.
func (s *IconStore) IDs() []domain.ItemID {
	out := make([]domain.ItemID, 0, len(s.icons))
	for id := range s.icons {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IconFileName picks an attachment name for an icon from its sniffed type.
func IconFileName(id domain.ItemID, img []byte) string {
	switch http.DetectContentType(img) {
	case "image/png":
		return id.String() + ".png"
	case "image/gif":
		return id.String() + ".gif"
	case "image/webp":
		return id.String() + ".webp"
	default:
		return id.String() + ".jpg"
	}
}

// Compile-time assertion that IconStore implements domain.IconStore.
var _ domain.IconStore = (*IconStore)(nil)
