package overlay

import (
	"strings"
	"testing"

	"github.com/Faultbox/bishop-viewer/internal/viewer"
)

func TestLinesResolution(t *testing.T) {
	s := viewer.New(viewer.DefaultOptions())
	lines := Lines(s.Snapshot(), true)

	found := false
	for _, l := range lines {
		if strings.Contains(l, "Slices: 100  |  Stacks: 100") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected resolution line, got %q", lines)
	}
}

func TestLinesColorOnlyWhenTextured(t *testing.T) {
	s := viewer.New(viewer.DefaultOptions())
	s.HandleKey('1', 0)

	lines := Lines(s.Snapshot(), false)
	if !containsLine(lines, "Red: 140  |  Green: 127  |  Blue: 127") {
		t.Errorf("expected color line, got %q", lines)
	}

	s.HandleKey('e', 0)
	lines = Lines(s.Snapshot(), false)
	if containsLine(lines, "Red:") {
		t.Errorf("expected no color line with texture off, got %q", lines)
	}
}

func TestLinesHelp(t *testing.T) {
	f := viewer.New(viewer.DefaultOptions()).Snapshot()
	with := Lines(f, true)
	without := Lines(f, false)
	if len(with) != len(without)+len(instructions)-1 {
		t.Errorf("expected help to add %d lines, got %d vs %d", len(instructions)-1, len(with), len(without))
	}
	if !containsLine(with, "Press [ q ] to quit") {
		t.Error("expected quit instruction")
	}
}

func TestRasterize(t *testing.T) {
	lines := []string{"ab", "abcd"}
	img := Rasterize(lines, [3]float32{1, 1, 1})

	b := img.Bounds()
	if b.Dx() != 4*7+2*padding {
		t.Errorf("expected width %d, got %d", 4*7+2*padding, b.Dx())
	}
	if b.Dy() != 2*lineHeight+2*padding {
		t.Errorf("expected height %d, got %d", 2*lineHeight+2*padding, b.Dy())
	}

	opaque := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 255 {
			if img.Pix[i-3] != 255 || img.Pix[i-2] != 255 || img.Pix[i-1] != 255 {
				t.Fatal("expected opaque pixels to use the text color")
			}
			opaque++
		}
	}
	if opaque == 0 {
		t.Error("expected some glyph pixels")
	}
	if img.Pix[3] != 0 {
		t.Error("expected transparent corner")
	}
}

func TestQuadAnchoredTopLeft(t *testing.T) {
	q := Quad(100, 40, 600)
	// First vertex is top-left with image row 0.
	if q[0] != marginX || q[1] != 600-marginY || q[3] != 0 {
		t.Errorf("unexpected top-left vertex %v", q[:4])
	}
	// Last vertex is bottom-right.
	if q[12] != marginX+100 || q[13] != 600-marginY-40 || q[15] != 1 {
		t.Errorf("unexpected bottom-right vertex %v", q[12:])
	}
}

func TestCacheKeyChangesWithColor(t *testing.T) {
	lines := []string{"x"}
	if cacheKey(lines, [3]float32{1, 1, 1}) == cacheKey(lines, [3]float32{0, 0, 0}) {
		t.Error("expected cache key to depend on text color")
	}
}

func containsLine(lines []string, sub string) bool {
	for _, l := range lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}
