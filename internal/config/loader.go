package config

import (
	"os"
	"regexp"

	"github.com/spf13/viper"

	"github.com/eLbARROS13/OH-Toolkit/internal/types"
)

// Load loads configuration from the specified YAML file path.
// Returns an error if the file doesn't exist or cannot be parsed.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	for key, value := range defaultSettings() {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, types.WrapError(types.CONFIG_LOAD_FAILED, "cannot read config file", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, types.WrapError(types.CONFIG_PARSE_FAILED, "cannot unmarshal config", err)
	}

	interpolate(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWithDefaults loads configuration from path, falling back to defaults
// when the file does not exist.
func LoadWithDefaults(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Load(path)
}

func defaultSettings() map[string]any {
	d := DefaultConfig()
	return map[string]any{
		"output.format": d.Output.Format,
		"log.level":     d.Log.Level,
		"log.format":    d.Log.Format,
	}
}

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// interpolate replaces ${VAR_NAME} with environment variable values in the
// path-like fields, so a shared config file can say data_dir: ${OH_DATA}.
func interpolate(cfg *Config) {
	cfg.DataDir = interpolateString(cfg.DataDir)
	cfg.RecipesFile = interpolateString(cfg.RecipesFile)
	cfg.Output.Path = interpolateString(cfg.Output.Path)
}

func interpolateString(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := match[2 : len(match)-1]
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return match
	})
}
