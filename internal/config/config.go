// Package config loads and validates the toolkit configuration file.
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config is the full toolkit configuration.
type Config struct {
	// DataDir is the directory holding profile JSON files. There is no
	// built-in default directory; it comes from the config file or a flag.
	DataDir string `mapstructure:"data_dir"`
	// RecipesFile points at the extraction recipes YAML, if any.
	RecipesFile string `mapstructure:"recipes_file"`
	Output      OutputConfig `mapstructure:"output"`
	Log         LogConfig    `mapstructure:"log"`
}

// OutputConfig controls where extraction results land by default.
type OutputConfig struct {
	// Format is one of "table", "csv", or "sqlite".
	Format string `mapstructure:"format"`
	// Path is the output file; empty means stdout for csv/table.
	Path string `mapstructure:"path"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is "text" or "json".
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Format: "table"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// NewLogger builds a slog.Logger per the log configuration, writing to w.
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
