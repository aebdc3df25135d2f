package memzero_test

import (
	"bytes"
	"testing"

	"crinkbot/internal/util/memzero"
)

func TestZero(t *testing.T) {
	a := []byte("discord-token")
	b := []byte("reddit-secret")

	memzero.Zero(a, nil, b)

	if !bytes.Equal(a, make([]byte, len(a))) || !bytes.Equal(b, make([]byte, len(b))) {
		t.Fatalf("buffers not cleared: %q %q", a, b)
	}
}
