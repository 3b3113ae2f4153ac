package llm

import (
	"path/filepath"
	"strings"
)

// MediaTypeOctetStream is used for unrecognized extensions
const MediaTypeOctetStream = "application/octet-stream"

var mediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// MediaTypeForPath derives the media type from the file extension
func MediaTypeForPath(path string) string {
	if mt, ok := mediaTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	return MediaTypeOctetStream
}

// ImageExtensions lists the extensions MediaTypeForPath recognizes
func ImageExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".webp", ".gif"}
}
