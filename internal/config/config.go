// Package config handles sculptor configuration loading and management.
package config

// Config holds all sculptor settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Brush    BrushConfig    `yaml:"brush"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds the height-field and display mesh settings.
// Resolution and world size are fixed for the lifetime of the GPU
// resources; changing them requires a restart.
type TerrainConfig struct {
	Resolution       int     `yaml:"resolution"`        // texels per side of the height texture (square)
	WorldSize        float32 `yaml:"world_size"`        // world-space edge length of the terrain
	HeightMultiplier float32 `yaml:"height_multiplier"` // vertical scale applied by the display mesh

	// Optional base heightmap image loaded at startup.
	BaseHeightmap string  `yaml:"base_heightmap"`
	BaseAmount    float32 `yaml:"base_amount"`
	MidGreyLowest bool    `yaml:"mid_grey_lowest"`
}

// BrushConfig holds the initial sculpt brush settings.
type BrushConfig struct {
	Size   float32 `yaml:"size"`   // world-space radius
	Amount float32 `yaml:"amount"` // height delta per applied stroke
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			Resolution:       256,
			WorldSize:        100.0,
			HeightMultiplier: 1.0,
			BaseAmount:       10.0,
			MidGreyLowest:    false,
		},
		Brush: BrushConfig{
			Size:   5.0,
			Amount: 0.2,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
