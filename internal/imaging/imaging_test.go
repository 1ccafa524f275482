package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestNormalizeDownscalesLargeImages(t *testing.T) {
	out, err := Normalize(pngBytes(t, 1024, 2048))
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output not png: %v", err)
	}
	b := img.Bounds()
	if b.Dy() != MaxEdge {
		t.Errorf("long edge = %d, want %d", b.Dy(), MaxEdge)
	}
	if b.Dx() != MaxEdge/2 {
		t.Errorf("short edge = %d, want %d", b.Dx(), MaxEdge/2)
	}
}

func TestNormalizeKeepsSmallImages(t *testing.T) {
	out, err := Normalize(pngBytes(t, 100, 50))
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output not png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("size changed to %dx%d", b.Dx(), b.Dy())
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	if _, err := Normalize([]byte("not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNormalizeFilePassesSVGThrough(t *testing.T) {
	dir := t.TempDir()
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><rect width="10" height="10"/></svg>`)
	path := filepath.Join(dir, "pic.svg")
	if err := os.WriteFile(path, svg, 0600); err != nil {
		t.Fatal(err)
	}

	out, isSVG, err := NormalizeFile(path)
	if err != nil {
		t.Fatalf("NormalizeFile() error = %v", err)
	}
	if !isSVG {
		t.Error("svg not detected")
	}
	if !bytes.Equal(out, svg) {
		t.Error("svg content modified")
	}
}

func TestSniff(t *testing.T) {
	if got := Sniff(pngBytes(t, 2, 2)); got != "image/png" {
		t.Errorf("Sniff(png) = %q", got)
	}
}
