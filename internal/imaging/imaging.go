package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"net/http"
	"os"

	"golang.org/x/image/draw"
)

// MaxEdge is the longest allowed edge of a stored raster image. Larger
// pictures are downscaled so the TUI and exports never deal with
// camera-sized files.
const MaxEdge = 512

// Sniff returns the detected MIME type of the file contents.
func Sniff(data []byte) string {
	return http.DetectContentType(data)
}

// IsSVG reports whether the data looks like an SVG document. SVG files are
// stored as-is since they carry no pixel dimensions to normalize.
func IsSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg")) || bytes.Contains(head, []byte("<?xml"))
}

// Normalize decodes a raster image, downscales it so its longest edge is at
// most MaxEdge, and re-encodes it as PNG. Images already within bounds are
// re-encoded without scaling so the stored format is uniform.
func Normalize(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > MaxEdge || h > MaxEdge {
		scale := float64(MaxEdge) / float64(w)
		if h > w {
			scale = float64(MaxEdge) / float64(h)
		}
		dw := int(float64(w) * scale)
		dh := int(float64(h) * scale)
		if dw < 1 {
			dw = 1
		}
		if dh < 1 {
			dh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		src = dst
	}

	var out bytes.Buffer
	if err := png.Encode(&out, src); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return out.Bytes(), nil
}

// NormalizeFile reads, normalizes and returns the image at path. SVG input
// is returned verbatim.
func NormalizeFile(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}
	if IsSVG(data) {
		return data, true, nil
	}
	norm, err := Normalize(data)
	if err != nil {
		return nil, false, err
	}
	return norm, false, nil
}
