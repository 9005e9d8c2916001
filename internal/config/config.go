package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"spritesplit/internal/sprite"

	"github.com/joho/godotenv"
)

// Config holds extraction and export settings.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir"`

	// Extraction settings
	AlphaThreshold int `json:"alpha_threshold"`
	MinArea        int `json:"min_area"`
	Bands          int `json:"bands"`

	// Export settings
	Format    string `json:"format"`     // "png" or "webp"
	NameWidth int    `json:"name_width"` // zero-padding of the sprite index
	Scale     int    `json:"scale"`      // nearest-neighbour upscale factor
	Workers   int    `json:"workers"`

	// Background removal
	BackgroundTolerance float64 `json:"background_tolerance"`
}

// Default returns the settings used when nothing else is given.
func Default() Config {
	return Config{
		AlphaThreshold:      30,
		MinArea:             100,
		Format:              "png",
		NameWidth:           2,
		Scale:               1,
		BackgroundTolerance: 12,
	}
}

// Load reads a JSON config file on top of Default.
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error; the return value reports whether it was read.
func LoadEnvFile(path string) (bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	}
	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("config: env file %s: %w", path, err)
	}
	return true, nil
}

// ApplyEnv overrides settings from SPRITESPLIT_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("SPRITESPLIT_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("SPRITESPLIT_FORMAT"); v != "" {
		c.Format = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"SPRITESPLIT_ALPHA_THRESHOLD", &c.AlphaThreshold},
		{"SPRITESPLIT_MIN_AREA", &c.MinArea},
		{"SPRITESPLIT_BANDS", &c.Bands},
		{"SPRITESPLIT_NAME_WIDTH", &c.NameWidth},
		{"SPRITESPLIT_SCALE", &c.Scale},
		{"SPRITESPLIT_WORKERS", &c.Workers},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q is not an integer", e.key, v)
		}
		*e.dst = n
	}

	if v := os.Getenv("SPRITESPLIT_BACKGROUND_TOLERANCE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: SPRITESPLIT_BACKGROUND_TOLERANCE=%q is not a number", v)
		}
		c.BackgroundTolerance = f
	}
	return nil
}

// Resolve applies CLI flags and fills derived defaults.
// Flags take priority when set (non-negative numbers, non-empty strings).
func (c *Config) Resolve(flags Flags, imagePath string) {
	// CLI flags override config file and environment
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.AlphaThreshold >= 0 {
		c.AlphaThreshold = flags.AlphaThreshold
	}
	if flags.MinArea >= 0 {
		c.MinArea = flags.MinArea
	}
	if flags.NameWidth >= 0 {
		c.NameWidth = flags.NameWidth
	}
	if flags.Bands > 0 {
		c.Bands = flags.Bands
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.BackgroundTolerance >= 0 {
		c.BackgroundTolerance = flags.BackgroundTolerance
	}

	c.Format = strings.ToLower(strings.TrimPrefix(c.Format, "."))

	// Output next to the working directory, named after the image
	if c.OutputDir == "" && imagePath != "" {
		stem := strings.TrimSuffix(filepath.Base(imagePath), filepath.Ext(imagePath))
		c.OutputDir = stem + "_auto_rect_output"
	}

	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks that every setting is in range.
func (c *Config) Validate() error {
	if c.AlphaThreshold < 0 || c.AlphaThreshold > 255 {
		return fmt.Errorf("alpha_threshold must be between 0 and 255, got %d", c.AlphaThreshold)
	}
	if c.MinArea < 0 {
		return fmt.Errorf("min_area must not be negative, got %d", c.MinArea)
	}
	if c.Bands < 0 {
		return fmt.Errorf("bands must not be negative, got %d", c.Bands)
	}
	if c.Format != "png" && c.Format != "webp" {
		return fmt.Errorf("format must be png or webp, got %q", c.Format)
	}
	if c.NameWidth < 0 || c.NameWidth > 9 {
		return fmt.Errorf("name_width must be between 0 and 9, got %d", c.NameWidth)
	}
	if c.Scale < 1 || c.Scale > 64 {
		return fmt.Errorf("scale must be between 1 and 64, got %d", c.Scale)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.BackgroundTolerance < 0 || c.BackgroundTolerance > 100 {
		return fmt.Errorf("background_tolerance must be between 0 and 100, got %g", c.BackgroundTolerance)
	}
	return nil
}

// Options converts the settings into extraction options.
func (c *Config) Options(p sprite.Padding) sprite.Options {
	return sprite.Options{
		AlphaThreshold: c.AlphaThreshold,
		MinArea:        c.MinArea,
		Padding:        p,
		Bands:          c.Bands,
	}
}

// Flags holds CLI flag values that override config file settings.
// Numeric fields use -1 (or 0 where zero is meaningless) for "not set".
type Flags struct {
	OutputDir           string
	Format              string
	AlphaThreshold      int
	MinArea             int
	NameWidth           int
	Bands               int
	Scale               int
	Workers             int
	BackgroundTolerance float64
}
