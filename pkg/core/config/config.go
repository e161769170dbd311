package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/stringkit/foundation/core/error"
	mdwerrors "github.com/msto63/stringkit/foundation/core/errors"
	mdwlog "github.com/msto63/stringkit/foundation/core/log"
)

// EnvConfigPath names the environment variable LoadFromEnv reads
const EnvConfigPath = "STRINGKIT_CONFIG"

// Pattern engine names accepted in [pattern_cache].engine
const (
	EngineStdlib  = "stdlib"
	EngineCoregex = "coregex"
)

// Config holds the complete library configuration
type Config struct {
	General      GeneralConfig      `toml:"general" yaml:"general"`
	PatternCache PatternCacheConfig `toml:"pattern_cache" yaml:"pattern_cache"`
	Text         TextConfig         `toml:"text" yaml:"text"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// PatternCacheConfig holds settings for the compiled pattern cache
type PatternCacheConfig struct {
	Capacity int      `toml:"capacity" yaml:"capacity"`
	TTL      Duration `toml:"ttl" yaml:"ttl"`
	Engine   string   `toml:"engine" yaml:"engine"`
	Metrics  bool     `toml:"metrics" yaml:"metrics"`
}

// TextConfig holds settings for case mapping
type TextConfig struct {
	Locale string `toml:"locale" yaml:"locale"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML formats the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Format is a configuration file format
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath selects the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("load").
			Messagef("unsupported config file extension: %s", path).
			Code(string(mdwerror.CodeConfigError)).
			Detail("path", path).
			Build()
	}
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
				Operation("load").
				Messagef("config file not found: %s", path).
				Code(string(mdwerror.CodeNotFound)).
				Detail("path", path).
				Build()
		}
		return nil, mdwerrors.OperationFailed(mdwerrors.ModuleConfig, "load", err)
	}

	return Parse(data, format)
}

// Parse decodes configuration data, applies defaults and validates it
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config

	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &cfg)
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("parse").
			Message("failed to parse config").
			Code(string(mdwerror.CodeConfigError)).
			Cause(err).
			Detail("format", string(format)).
			Build()
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from the STRINGKIT_CONFIG environment
// variable or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		defaultPaths := []string{
			"./configs/stringkit.toml",
			"./stringkit.toml",
			"./stringkit.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/stringkit/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("load_from_env").
			Messagef("no config file found, set %s or create configs/stringkit.toml", EnvConfigPath).
			Code(string(mdwerror.CodeMissingConfig)).
			Build()
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "stringkit"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "json"
	}

	if c.PatternCache.Capacity == 0 {
		c.PatternCache.Capacity = 1000
	}
	if c.PatternCache.Engine == "" {
		c.PatternCache.Engine = EngineStdlib
	}

	if c.Text.Locale == "" {
		c.Text.Locale = "und"
	}
}

// Validate checks every section and returns the first invalid value
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return mdwerrors.ConfigInvalid("general.log_level", c.General.LogLevel, err.Error())
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return mdwerrors.ConfigInvalid("general.log_format", c.General.LogFormat, err.Error())
	}

	if c.PatternCache.Capacity <= 0 {
		return mdwerrors.ConfigInvalid("pattern_cache.capacity", c.PatternCache.Capacity, "must be positive")
	}
	if c.PatternCache.TTL.Duration < 0 {
		return mdwerrors.ConfigInvalid("pattern_cache.ttl", c.PatternCache.TTL.String(), "must not be negative")
	}
	switch c.PatternCache.Engine {
	case EngineStdlib, EngineCoregex:
	default:
		return mdwerrors.ConfigInvalid("pattern_cache.engine", c.PatternCache.Engine,
			fmt.Sprintf("must be %q or %q", EngineStdlib, EngineCoregex))
	}

	if _, err := language.Parse(c.Text.Locale); err != nil {
		return mdwerrors.ConfigInvalid("text.locale", c.Text.Locale, err.Error())
	}

	return nil
}

// LogLevel returns the parsed general.log_level
func (c *Config) LogLevel() mdwlog.Level {
	level, _ := mdwlog.ParseLevel(c.General.LogLevel)
	return level
}

// LogFormat returns the parsed general.log_format
func (c *Config) LogFormat() mdwlog.Format {
	format, _ := mdwlog.ParseFormat(c.General.LogFormat)
	return format
}
