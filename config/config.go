// Package config resolves the run configuration of the fixture generator.
//
// Sources, highest priority first: command-line flags that were set,
// PATHQUIZ_* environment variables, an optional YAML/JSON config file,
// built-in defaults. Resolution is done by spf13/viper; the result is
// checked with ozzo-validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. PATHQUIZ_MAX_WEIGHT.
const EnvPrefix = "PATHQUIZ"

// Configuration keys.
const (
	KeyNodeCounts = "node_counts"
	KeyMaxWeight  = "max_weight"
	KeyBaseSeed   = "base_seed"
	KeyOutputDir  = "output_dir"
	KeyFormat     = "format"
	KeyDot        = "dot"
	KeyCrossCheck = "cross_check"
	KeyLogLevel   = "log_level"
)

// flagNames maps configuration keys to command-line flag names.
var flagNames = map[string]string{
	KeyNodeCounts: "node-counts",
	KeyMaxWeight:  "max-weight",
	KeyBaseSeed:   "seed",
	KeyOutputDir:  "out",
	KeyFormat:     "format",
	KeyDot:        "dot",
	KeyCrossCheck: "cross-check",
	KeyLogLevel:   "log-level",
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LogLevels lists the accepted log_level values.
var LogLevels = []interface{}{"debug", "info", "warn", "error"}

// Config is the resolved run configuration.
type Config struct {
	// NodeCounts holds one entry per fixture; fixture i (1-based) has NodeCounts[i-1] nodes.
	NodeCounts []int `mapstructure:"node_counts"`
	// MaxWeight is the inclusive upper bound of edge weights.
	MaxWeight int `mapstructure:"max_weight"`
	// BaseSeed seeds fixture i with BaseSeed + i.
	BaseSeed   int64  `mapstructure:"base_seed"`
	OutputDir  string `mapstructure:"output_dir"`
	Format     string `mapstructure:"format"`
	Dot        bool   `mapstructure:"dot"`
	CrossCheck bool   `mapstructure:"cross_check"`
	LogLevel   string `mapstructure:"log_level"`
}

// Default returns the built-in configuration: five fixtures of
// 20, 50, 80, 100 and 120 nodes, weights up to 20, base seed 42, JSON files
// in the working directory.
func Default() Config {
	return Config{
		NodeCounts: []int{20, 50, 80, 100, 120},
		MaxWeight:  20,
		BaseSeed:   42,
		OutputDir:  ".",
		Format:     "json",
		LogLevel:   "info",
	}
}

// Validate checks value ranges. Errors wrap ErrInvalidConfig and the
// underlying validation.Errors.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.NodeCounts, validation.Required, validation.Each(validation.Required, validation.Min(2))),
		validation.Field(&c.MaxWeight, validation.Required, validation.Min(1)),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.Format, validation.Required, validation.In("json", "yaml", "yml")),
		validation.Field(&c.LogLevel, validation.In(LogLevels...)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// New returns a viper instance preloaded with defaults and environment
// bindings.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyNodeCounts, d.NodeCounts)
	v.SetDefault(KeyMaxWeight, d.MaxWeight)
	v.SetDefault(KeyBaseSeed, d.BaseSeed)
	v.SetDefault(KeyOutputDir, d.OutputDir)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyDot, d.Dot)
	v.SetDefault(KeyCrossCheck, d.CrossCheck)
	v.SetDefault(KeyLogLevel, d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// RegisterFlags declares the generator flags on fs with default values.
// log-level is left to the caller, which usually registers it as persistent.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.IntSlice(flagNames[KeyNodeCounts], d.NodeCounts, "node count of each fixture, in order")
	fs.Int(flagNames[KeyMaxWeight], d.MaxWeight, "maximum edge weight (inclusive)")
	fs.Int64(flagNames[KeyBaseSeed], d.BaseSeed, "base seed; fixture i uses seed+i")
	fs.String(flagNames[KeyOutputDir], d.OutputDir, "output directory")
	fs.String(flagNames[KeyFormat], d.Format, "fixture file format: json or yaml")
	fs.Bool(flagNames[KeyDot], d.Dot, "also write a Graphviz .dot drawing per fixture")
	fs.Bool(flagNames[KeyCrossCheck], d.CrossCheck, "re-solve every fixture with gonum and compare")
}

// BindFlags binds every known flag present in fs to its configuration key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagNames {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind --%s: %w", name, err)
		}
	}

	return nil
}

// Load reads file (if not empty) into v, decodes the merged view and
// validates it.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}
