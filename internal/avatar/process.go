package avatar

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

const (
	thumbSize   = 256
	jpegQuality = 50
)

// orientation reads the EXIF orientation tag from raw image bytes. Returns 1
// (no transform) when the tag is absent or unreadable.
func orientation(data []byte) int {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	o, err := tag.Int(0)
	if err != nil || o < 1 || o > 8 {
		return 1
	}
	return o
}

// applyOrientation maps the eight EXIF orientation values onto the
// corresponding transforms.
func applyOrientation(img image.Image, o int) image.Image {
	switch o {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	}
	return img
}

// normalize turns an uploaded image into the canonical thumbnail: oriented
// per its EXIF tag, fit within 256x256, re-encoded as JPEG at quality 50.
// Re-encoding drops all embedded metadata.
func normalize(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	img = applyOrientation(img, orientation(data))
	return imaging.Fit(img, thumbSize, thumbSize, imaging.Lanczos), nil
}
