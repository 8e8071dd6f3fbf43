// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Mesh       MeshConfig       `yaml:"mesh"`
	Texture    TextureConfig    `yaml:"texture"`
	Light      LightConfig      `yaml:"light"`
	View       ViewConfig       `yaml:"view"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// MeshConfig holds the initial tessellation resolution.
type MeshConfig struct {
	Slices int `yaml:"slices"`
	Stacks int `yaml:"stacks"`
}

// TextureConfig holds procedural texture settings.
type TextureConfig struct {
	Enabled      bool       `yaml:"enabled"`
	Mode         string     `yaml:"mode"` // flat, checkerboard, random, dynamic
	Size         int        `yaml:"size"`
	CheckSize    int        `yaml:"check_size"`
	NoiseMin     uint8      `yaml:"noise_min"`
	NoiseMax     uint8      `yaml:"noise_max"`
	FlatColor    [3]uint8   `yaml:"flat_color"`
	InitialColor [3]float64 `yaml:"initial_color"`
	ColorStep    float64    `yaml:"color_step"`
}

// LightConfig holds point light settings.
type LightConfig struct {
	Position     [3]float64 `yaml:"position"`
	Distance     float64    `yaml:"distance"`
	SpinStep     float64    `yaml:"spin_step"`
	DistanceStep float64    `yaml:"distance_step"`
}

// ViewConfig holds camera and scene settings.
type ViewConfig struct {
	RotateSensitivity float64 `yaml:"rotate_sensitivity"`
	DarkBackground    bool    `yaml:"dark_background"`
	Floor             bool    `yaml:"floor"`
	ShowHelp          bool    `yaml:"show_help"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Interactive Bishop Chess Piece",
			Width:      1600,
			Height:     1200,
			Fullscreen: false,
			VSync:      true,
		},
		Mesh: MeshConfig{
			Slices: 100,
			Stacks: 100,
		},
		Texture: TextureConfig{
			Enabled:      true,
			Mode:         "dynamic",
			Size:         256,
			CheckSize:    32,
			NoiseMin:     150,
			NoiseMax:     220,
			FlatColor:    [3]uint8{200, 170, 120},
			InitialColor: [3]float64{0.5, 0.5, 0.5},
			ColorStep:    0.05,
		},
		Light: LightConfig{
			Position:     [3]float64{2, 2, 2},
			Distance:     2,
			SpinStep:     5,
			DistanceStep: 0.1,
		},
		View: ViewConfig{
			RotateSensitivity: 0.2,
			DarkBackground:    true,
			Floor:             false,
			ShowHelp:          true,
		},
		Screenshot: ScreenshotConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
