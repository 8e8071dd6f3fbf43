package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagSlices     = flag.Int("slices", 0, "Initial slice count")
	flagStacks     = flag.Int("stacks", 0, "Initial stack count")
	flagMode       = flag.String("texture", "", "Initial texture mode (flat, checkerboard, random, dynamic)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagSlices > 0 {
		cfg.Mesh.Slices = *flagSlices
	}
	if *flagStacks > 0 {
		cfg.Mesh.Stacks = *flagStacks
	}
	if *flagMode != "" {
		cfg.Texture.Mode = *flagMode
	}
}
