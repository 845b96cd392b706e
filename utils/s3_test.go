package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImageDataURL(t *testing.T) {
	payload := []byte("fake image bytes")
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	data, ext, contentType, err := DecodeImageDataURL(dataURL)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "png", ext)
	assert.Equal(t, "image/png", contentType)
}

func TestDecodeImageDataURL_Gif(t *testing.T) {
	dataURL := "data:image/gif;base64," + base64.StdEncoding.EncodeToString([]byte{0x47, 0x49, 0x46})

	_, ext, contentType, err := DecodeImageDataURL(dataURL)
	require.NoError(t, err)
	assert.Equal(t, "gif", ext)
	assert.Equal(t, "image/gif", contentType)
}

func TestDecodeImageDataURL_Invalid(t *testing.T) {
	cases := []string{
		"",
		"plain text",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png;base64,", // empty payload
		"data:image/png;base64,!!!not-base64!!!",
	}
	for _, dataURL := range cases {
		_, _, _, err := DecodeImageDataURL(dataURL)
		assert.Error(t, err, "input %q", dataURL)
	}
}

func TestPublicURL_TrimsTrailingSlash(t *testing.T) {
	t.Setenv("CLOUDFRONT_URL", "https://cdn.example.com/")
	assert.Equal(t, "https://cdn.example.com/photos/1/a.jpg", PublicURL("photos/1/a.jpg"))

	t.Setenv("CLOUDFRONT_URL", "https://cdn.example.com")
	assert.Equal(t, "https://cdn.example.com/photos/1/a.jpg", PublicURL("photos/1/a.jpg"))
}
