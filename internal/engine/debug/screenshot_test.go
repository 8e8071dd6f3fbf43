package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFlipRows(t *testing.T) {
	// 1x2 image: bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 0,
		0, 0, 255, 0,
	}
	img, err := FlipRows(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipRows failed: %v", err)
	}
	top := img.RGBAAt(0, 0)
	if top.B != 255 || top.R != 0 || top.A != 255 {
		t.Errorf("expected opaque blue top row, got %v", top)
	}
	bottom := img.RGBAAt(0, 1)
	if bottom.R != 255 || bottom.B != 0 {
		t.Errorf("expected red bottom row, got %v", bottom)
	}
}

func TestFlipRowsSizeMismatch(t *testing.T) {
	if _, err := FlipRows(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected error for short pixel data")
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "bishop")
	sc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC) }

	if _, err := sc.CaptureFromPixels(make([]byte, 4*3*2), 4, 3); err == nil {
		t.Fatal("expected size mismatch error")
	}

	path, err := sc.CaptureFromPixels(make([]byte, 4*4*3), 4, 3)
	if err != nil {
		t.Fatalf("CaptureFromPixels failed: %v", err)
	}

	want := filepath.Join(dir, "bishop_2024-03-01_12-30-45.000.png")
	if path != want {
		t.Errorf("expected %s, got %s", want, path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode screenshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("expected 4x3 image, got %v", b)
	}
}
