package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crinkbot/internal/domain"
	"crinkbot/internal/store"
)

// onePixelPNG is a 1x1 transparent PNG.
const onePixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func writeDataset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "item-icons.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadIcons_LookupOK(t *testing.T) {
	path := writeDataset(t, `{"4151": "`+onePixelPNG+`", "11840": "aGVsbG8="}`)

	icons, err := store.LoadIcons(path)
	require.NoError(t, err)
	assert.Equal(t, 2, icons.Len())
	assert.Equal(t, []domain.ItemID{"11840", "4151"}, icons.IDs())

	img, err := icons.Lookup("4151")
	require.NoError(t, err)
	assert.Equal(t, "4151.png", store.IconFileName("4151", img))

	img, err = icons.Lookup("11840")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), img)
	assert.Equal(t, "11840.jpg", store.IconFileName("11840", img))
}

func TestLookup_MissingIsNotFound(t *testing.T) {
	icons, err := store.NewIconStore(map[string]string{"1": onePixelPNG})
	require.NoError(t, err)

	_, err = icons.Lookup("999")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "no icon found for item 999", err.Error())
}

func TestLoadIcons_FatalStartup(t *testing.T) {
	cases := map[string]string{
		"missing file": filepath.Join(t.TempDir(), "nope.json"),
		"bad json":     writeDataset(t, `{"1": `),
		"bad base64":   writeDataset(t, `{"1": "***"}`),
		"not a map":    writeDataset(t, `["a", "b"]`),
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := store.LoadIcons(path)
			require.ErrorIs(t, err, domain.ErrFatalStartup)
		})
	}
}
