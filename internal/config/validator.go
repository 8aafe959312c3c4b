package config

import (
	"github.com/eLbARROS13/OH-Toolkit/internal/types"
)

var (
	validOutputFormats = map[string]struct{}{"table": {}, "csv": {}, "sqlite": {}}
	validLogLevels     = map[string]struct{}{"debug": {}, "info": {}, "warn": {}, "error": {}}
	validLogFormats    = map[string]struct{}{"text": {}, "json": {}}
)

// Validate checks a configuration for contract violations.
func Validate(cfg *Config) error {
	if _, ok := validOutputFormats[cfg.Output.Format]; !ok {
		return types.NewErrorf(types.CONFIG_VALIDATION_FAILED,
			"output.format %q is not one of table, csv, sqlite", cfg.Output.Format)
	}
	if cfg.Output.Format == "sqlite" && cfg.Output.Path == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			"output.format sqlite requires output.path")
	}
	if _, ok := validLogLevels[cfg.Log.Level]; !ok {
		return types.NewErrorf(types.CONFIG_VALIDATION_FAILED,
			"log.level %q is not one of debug, info, warn, error", cfg.Log.Level)
	}
	if _, ok := validLogFormats[cfg.Log.Format]; !ok {
		return types.NewErrorf(types.CONFIG_VALIDATION_FAILED,
			"log.format %q is not one of text, json", cfg.Log.Format)
	}
	return nil
}
