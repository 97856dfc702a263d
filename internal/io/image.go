package ioutils

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// ImageService resizes downloaded cover scans into local thumbnails.
//
// Discogs cover scans are large; the enrichment job shrinks them to a
// bounded size before writing them next to the catalog.
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Thumbnail scales an image down to fit within maxSize in both
// dimensions, preserving aspect ratio, and returns it as JPEG bytes.
// Images already within bounds are only re-encoded.
func (s *ImageService) Thumbnail(data []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxSize || height > maxSize {
		if width > height {
			height = height * maxSize / width
			width = maxSize
		} else {
			width = width * maxSize / height
			height = maxSize
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	// Catmull-Rom keeps sleeve art legible at thumbnail size
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
