package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/pokidex/internal/clients/llm"
)

func TestMediaTypeForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"pikachu.png", "image/png"},
		{"/tmp/SNAP.PNG", "image/png"},
		{"eevee.jpg", "image/jpeg"},
		{"eevee.JPEG", "image/jpeg"},
		{"mew.webp", "image/webp"},
		{"ditto.Gif", "image/gif"},
		{"notes.txt", llm.MediaTypeOctetStream},
		{"no-extension", llm.MediaTypeOctetStream},
		{"archive.png.bak", llm.MediaTypeOctetStream},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, llm.MediaTypeForPath(tt.path))
		})
	}
}
