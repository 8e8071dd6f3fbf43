// Package app runs the viewer: window, input, state, and rendering.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/bishop-viewer/internal/config"
	"github.com/Faultbox/bishop-viewer/internal/engine/debug"
	"github.com/Faultbox/bishop-viewer/internal/engine/input"
	"github.com/Faultbox/bishop-viewer/internal/engine/overlay"
	"github.com/Faultbox/bishop-viewer/internal/engine/renderer"
	"github.com/Faultbox/bishop-viewer/internal/engine/window"
	"github.com/Faultbox/bishop-viewer/internal/logger"
	"github.com/Faultbox/bishop-viewer/internal/texture"
	"github.com/Faultbox/bishop-viewer/internal/viewer"
)

// App is the viewer instance.
type App struct {
	config *config.Config

	window      *window.Window
	renderer    *renderer.Renderer
	overlay     *overlay.Overlay
	input       *input.Input
	state       *viewer.State
	screenshots *debug.ScreenshotCapture

	screenshotPending bool
}

// New creates the window and GL resources for cfg.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	opts, err := ViewerOptions(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:      cfg,
		input:       input.New(),
		state:       viewer.New(opts),
		screenshots: debug.NewScreenshotCapture(cfg.Screenshot.Dir, "bishop"),
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	checker := texture.DefaultCheckerboard()
	checker.Block = cfg.Texture.CheckSize
	textures := texture.NewSet(
		texture.RGB(cfg.Texture.FlatColor),
		checker,
		cfg.Texture.NoiseMin, cfg.Texture.NoiseMax,
		&a.state.Color,
	)

	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:       w,
		Height:      h,
		TextureSize: cfg.Texture.Size,
	}, textures)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.overlay, err = overlay.New(cfg.View.ShowHelp)
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}

	logger.Info("viewer initialized")
	return a, nil
}

// ViewerOptions converts the configuration into initial viewer state.
func ViewerOptions(cfg *config.Config) (viewer.Options, error) {
	kind, ok := texture.ParseKind(cfg.Texture.Mode)
	if !ok {
		return viewer.Options{}, fmt.Errorf("unknown texture mode %q", cfg.Texture.Mode)
	}

	opts := viewer.DefaultOptions()
	opts.Resolution.Stacks = cfg.Mesh.Stacks
	opts.Resolution.Slices = cfg.Mesh.Slices
	opts.Color = cfg.Texture.InitialColor
	opts.ColorStep = cfg.Texture.ColorStep
	opts.TextureEnabled = cfg.Texture.Enabled
	opts.Mode = kind
	opts.LightPosition = cfg.Light.Position
	opts.LightDistance = cfg.Light.Distance
	opts.SpinStep = cfg.Light.SpinStep
	opts.DistanceStep = cfg.Light.DistanceStep
	opts.RotateSensitivity = cfg.View.RotateSensitivity
	opts.DarkBackground = cfg.View.DarkBackground
	opts.Floor = cfg.View.Floor
	return opts, nil
}

// Run executes the frame loop until the viewer is asked to quit.
func (a *App) Run() error {
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for {
		quit := a.input.Update()

		for _, ev := range a.input.Events() {
			if ev.Type == input.EventWindowResize {
				a.renderer.Resize(a.window.DrawableSize())
				continue
			}
			switch Dispatch(a.state, ev) {
			case viewer.ActionQuit:
				quit = true
			case viewer.ActionScreenshot:
				a.screenshotPending = true
			}
		}
		if quit {
			logger.Info("quit requested")
			return nil
		}

		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

func (a *App) render() {
	frame := a.state.Snapshot()
	a.renderer.Render(frame, a.state.TakeDynamicDirty())

	w, h := a.renderer.Size()
	a.overlay.Draw(frame, w, h)

	if a.screenshotPending {
		a.screenshotPending = false
		pixels, pw, ph := a.renderer.ReadPixels()
		path, err := a.screenshots.CaptureFromPixels(pixels, pw, ph)
		if err != nil {
			logger.Warn("screenshot failed", zap.Error(err))
			return
		}
		logger.Info("screenshot saved", zap.String("path", path))
	}
}

// Dispatch routes an input event to the matching state handler.
func Dispatch(s *viewer.State, ev input.Event) viewer.Action {
	switch ev.Type {
	case input.EventQuit:
		return viewer.ActionQuit
	case input.EventKey:
		return s.HandleKey(ev.Key, ev.Mods)
	case input.EventSpecial:
		s.HandleSpecial(ev.Special)
	case input.EventPointerDown:
		s.PointerDown(ev.Button, ev.X, ev.Y)
	case input.EventPointerUp:
		s.PointerUp(ev.Button, ev.X, ev.Y)
	case input.EventPointerMove:
		s.PointerMove(ev.X, ev.Y)
	}
	return viewer.ActionNone
}

// Close cleans up viewer resources.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.overlay != nil {
		a.overlay.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
