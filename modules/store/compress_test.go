package store

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeflateRoundTrips(t *testing.T) {
	content := []byte("the quick brown fox jumps over the lazy dog, repeatedly, repeatedly, repeatedly")
	compressed, err := deflate(content)
	require.NoError(t, err)
	assert.NotEmpty(t, compressed)

	r := flate.NewReader(bytes.NewReader(compressed))
	defer r.Close()
	var out bytes.Buffer
	_, err = out.ReadFrom(r)
	require.NoError(t, err)
	assert.Equal(t, content, out.Bytes())
}
