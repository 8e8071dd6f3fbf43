package app

import (
	"math"
	"testing"

	"github.com/Faultbox/bishop-viewer/internal/config"
	"github.com/Faultbox/bishop-viewer/internal/engine/input"
	"github.com/Faultbox/bishop-viewer/internal/texture"
	"github.com/Faultbox/bishop-viewer/internal/viewer"
)

func TestViewerOptionsFromDefaults(t *testing.T) {
	opts, err := ViewerOptions(config.Default())
	if err != nil {
		t.Fatalf("ViewerOptions failed: %v", err)
	}
	if opts != viewer.DefaultOptions() {
		t.Errorf("expected default config to match default viewer options\n got  %+v\n want %+v", opts, viewer.DefaultOptions())
	}
}

func TestViewerOptionsMode(t *testing.T) {
	cfg := config.Default()
	cfg.Texture.Mode = "checkerboard"
	opts, err := ViewerOptions(cfg)
	if err != nil {
		t.Fatalf("ViewerOptions failed: %v", err)
	}
	if opts.Mode != texture.KindCheckerboard {
		t.Errorf("expected checkerboard, got %v", opts.Mode)
	}

	cfg.Texture.Mode = "marble"
	if _, err := ViewerOptions(cfg); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestDispatchQuit(t *testing.T) {
	s := viewer.New(viewer.DefaultOptions())
	tests := []input.Event{
		{Type: input.EventQuit},
		{Type: input.EventKey, Key: 'q'},
		{Type: input.EventKey, Key: viewer.KeyEscape},
	}
	for _, ev := range tests {
		if got := Dispatch(s, ev); got != viewer.ActionQuit {
			t.Errorf("event %+v: expected quit, got %v", ev, got)
		}
	}
}

func TestDispatchScreenshot(t *testing.T) {
	s := viewer.New(viewer.DefaultOptions())
	if got := Dispatch(s, input.Event{Type: input.EventKey, Key: 'p'}); got != viewer.ActionScreenshot {
		t.Errorf("expected screenshot action, got %v", got)
	}
}

func TestDispatchDrag(t *testing.T) {
	s := viewer.New(viewer.DefaultOptions())
	Dispatch(s, input.Event{Type: input.EventPointerDown, Button: viewer.ButtonLeft, X: 10, Y: 10})
	Dispatch(s, input.Event{Type: input.EventPointerMove, X: 20, Y: 15})
	Dispatch(s, input.Event{Type: input.EventPointerUp, Button: viewer.ButtonLeft, X: 20, Y: 15})
	Dispatch(s, input.Event{Type: input.EventPointerMove, X: 100, Y: 100})

	if math.Abs(s.RotY-2) > 1e-9 || math.Abs(s.RotX-1) > 1e-9 {
		t.Errorf("expected rotation (1, 2), got (%v, %v)", s.RotX, s.RotY)
	}
}

func TestDispatchSpecialUp(t *testing.T) {
	s := viewer.New(viewer.DefaultOptions())
	Dispatch(s, input.Event{Type: input.EventSpecial, Special: viewer.KeyUp})

	want := 2 * math.Sin(5*math.Pi/180)
	if math.Abs(s.Light.Position[1]-want) > 1e-9 {
		t.Errorf("expected light y %v, got %v", want, s.Light.Position[1])
	}
}

func TestDispatchAltSlices(t *testing.T) {
	s := viewer.New(viewer.DefaultOptions())
	Dispatch(s, input.Event{Type: input.EventKey, Key: '=', Mods: viewer.ModAlt})
	if s.Resolution.Slices != 101 || s.Resolution.Stacks != 100 {
		t.Errorf("expected 101 slices and 100 stacks, got %+v", s.Resolution)
	}
}
