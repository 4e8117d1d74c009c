package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/katalvlaran/wgraph/loader"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

// EnvPrefix is the prefix of environment overrides, e.g. WGRAPH_INPUT.
const EnvPrefix = "WGRAPH"

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// LoaderConfig mirrors the loader options.
type LoaderConfig struct {
	Comma     string `mapstructure:"comma"`
	Comment   string `mapstructure:"comment"`
	Header    bool   `mapstructure:"header"`
	Isolated  bool   `mapstructure:"isolated"`
	TrimSpace bool   `mapstructure:"trim_space"`
}

// MSTConfig holds defaults for the mst command.
type MSTConfig struct {
	Method string `mapstructure:"method"`
	Root   string `mapstructure:"root"`
}

// Config holds all runtime configuration for a wgraph invocation.
// Values are populated from .wgraph.yaml (or .toml), WGRAPH_* env vars, and CLI flags.
type Config struct {
	Input   string       `mapstructure:"input"`
	Format  string       `mapstructure:"format"`
	Verbose bool         `mapstructure:"verbose"`
	Loader  LoaderConfig `mapstructure:"loader"`
	MST     MSTConfig    `mapstructure:"mst"`
}

// New returns a viper instance wired for WGRAPH_* environment variables.
// Nested keys map with underscores: loader.comma reads WGRAPH_LOADER_COMMA.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// ReadFile loads path into v, or searches for .wgraph.{yaml,toml,...} in the
// working directory and the home directory when path is empty. A missing
// default file is not an error; a missing explicit file is.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".wgraph")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && path == "" && errors.As(err, &notFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read: %w", err)
	}

	return nil
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	v.SetDefault("input", "")
	v.SetDefault("format", FormatText)
	v.SetDefault("verbose", false)
	v.SetDefault("loader.comma", ",")
	v.SetDefault("loader.comment", "#")
	v.SetDefault("loader.header", false)
	v.SetDefault("loader.isolated", false)
	v.SetDefault("loader.trim_space", true)
	v.SetDefault("mst.method", prim_kruskal.MethodKruskal)
	v.SetDefault("mst.root", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerations and delimiter lengths.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q (want text, json or yaml)", ErrInvalid, c.Format)
	}
	switch c.MST.Method {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
	default:
		return fmt.Errorf("%w: mst.method %q", ErrInvalid, c.MST.Method)
	}
	if utf8.RuneCountInString(c.Loader.Comma) != 1 {
		return fmt.Errorf("%w: loader.comma %q must be one character", ErrInvalid, c.Loader.Comma)
	}
	if utf8.RuneCountInString(c.Loader.Comment) > 1 {
		return fmt.Errorf("%w: loader.comment %q must be at most one character", ErrInvalid, c.Loader.Comment)
	}

	return nil
}

// Options converts the loader section into loader options.
// An empty Comment disables comments.
func (c LoaderConfig) Options() []loader.Option {
	comma, _ := utf8.DecodeRuneInString(c.Comma)
	var comment rune
	if c.Comment != "" {
		comment, _ = utf8.DecodeRuneInString(c.Comment)
	}

	return []loader.Option{
		loader.WithComma(comma),
		loader.WithComment(comment),
		loader.WithHeader(c.Header),
		loader.WithIsolated(c.Isolated),
		loader.WithTrimSpace(c.TrimSpace),
	}
}
