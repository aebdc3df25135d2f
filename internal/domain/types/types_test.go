package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crinkbot/internal/domain/types"
)

func TestPost_IsImage(t *testing.T) {
	cases := map[string]bool{
		"https://i.redd.it/abc.jpg":            true,
		"https://i.redd.it/abc.JPEG":           true,
		"https://i.imgur.com/abc.png?width=64": true,
		"https://v.redd.it/abc":                false,
		"https://i.imgur.com/abc.gifv":         false,
		"https://example.com/jpg/page":         false,
		"::not a url":                          false,
	}
	for raw, want := range cases {
		assert.Equal(t, want, types.Post{URL: raw}.IsImage(), raw)
	}
}

func TestCollectionItem_ObtainedDate(t *testing.T) {
	item := types.CollectionItem{ObtainedAt: "2023-04-01T12:30:00.000Z"}
	assert.Equal(t, "2023-04-01", item.ObtainedDate())

	assert.Equal(t, "2023-04-01", types.CollectionItem{ObtainedAt: "2023-04-01"}.ObtainedDate())
}

func TestMessage_FromSelf(t *testing.T) {
	assert.True(t, types.Message{AuthorID: "1", SelfID: "1"}.FromSelf())
	assert.False(t, types.Message{AuthorID: "1", SelfID: "2"}.FromSelf())
	assert.False(t, types.Message{AuthorID: "", SelfID: ""}.FromSelf())
}
