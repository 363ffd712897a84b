// Package config loads pngme settings from a YAML file.
//
// The file is chosen by the --config flag or the PNGME_CONFIG
// environment variable. Without either, the built-in defaults apply.
// Settings from the file are merged over the defaults, so a file only
// needs to name what it changes.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	png "github.com/fumin/pngme"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "PNGME_CONFIG"

// Config is the complete pngme configuration.
type Config struct {
	// Compression is the zlib level for generated images: default,
	// none, speed or best.
	Compression string `yaml:"compression"`

	// Checked enables the chunk type policy for encode and remove.
	// Default: true
	Checked bool `yaml:"checked"`

	Scrub    ScrubConfig    `yaml:"scrub"`
	Generate GenerateConfig `yaml:"generate"`
	Log      LogConfig      `yaml:"log"`
}

// ScrubConfig configures the scrub command.
type ScrubConfig struct {
	// Keep lists chunk types that survive a scrub in addition to the
	// ones needed to render the image.
	Keep []string `yaml:"keep"`
}

// GenerateConfig configures the generate command.
type GenerateConfig struct {
	// OutputDir is where demonstration images are written. ${HOME} and
	// ${VAR:-default} are expanded.
	OutputDir string `yaml:"output_dir"`
}

// LogConfig configures the command logger.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Compression: "default",
		Checked:     true,
		Generate: GenerateConfig{
			OutputDir: ".",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the file named by PNGME_CONFIG, or returns Default when the
// variable is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Generate.OutputDir = expandVars(cfg.Generate.OutputDir)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} from the environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := png.ParseCompressionLevel(c.Compression); err != nil {
		errs = append(errs, fmt.Errorf("compression: %w", err))
	}
	if _, err := c.KeepTypes(); err != nil {
		errs = append(errs, err)
	}
	if c.Generate.OutputDir == "" {
		errs = append(errs, fmt.Errorf("generate.output_dir is required"))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// CompressionLevel returns the parsed compression setting.
func (c *Config) CompressionLevel() png.CompressionLevel {
	level, err := png.ParseCompressionLevel(c.Compression)
	if err != nil {
		return png.DefaultCompression
	}
	return level
}

// KeepTypes parses scrub.keep.
func (c *Config) KeepTypes() ([]png.ChunkType, error) {
	types := make([]png.ChunkType, 0, len(c.Scrub.Keep))
	for _, s := range c.Scrub.Keep {
		t, err := png.ParseChunkType(s)
		if err != nil {
			return nil, fmt.Errorf("scrub.keep %q: %w", s, err)
		}
		types = append(types, t)
	}
	return types, nil
}

// LogLevel parses log.level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
