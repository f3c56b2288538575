package pictriage

import (
	"bytes"
	_ "embed"
	"image"
	"log"
)

// placeholderImageData is shown in place of images that fail to
// decode.
//
//go:embed assets/placeholder.png
var placeholderImageData []byte

// placeholderImage decodes the embedded placeholder, nil when the
// embedded asset itself is unreadable (the texture cache falls back to
// a flat fill in that case).
func placeholderImage() image.Image {
	img, _, err := image.Decode(bytes.NewReader(placeholderImageData))
	if err != nil {
		log.Printf("Failed to decode embedded placeholder: %v", err)
		return nil
	}
	return img
}
