package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/username/plaincal/internal/calendar"
	"gopkg.in/yaml.v3"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar" yaml:"calendar"`
	Range    RangeConfig    `mapstructure:"range" yaml:"range"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// CalendarConfig represents the layout of the listing
type CalendarConfig struct {
	LineLength    int    `mapstructure:"line_length" yaml:"line_length"`
	DaySep        string `mapstructure:"day_sep" yaml:"day_sep"`               // single character
	WeekSep       string `mapstructure:"week_sep" yaml:"week_sep"`             // single character
	WeekendMarker string `mapstructure:"weekend_marker" yaml:"weekend_marker"` // repeated 4 times
}

// RangeConfig represents the inclusive date range (YYYY-MM-DD)
type RangeConfig struct {
	From string `mapstructure:"from" yaml:"from"`
	To   string `mapstructure:"to" yaml:"to"`
}

// OutputConfig represents where the listing is written
type OutputConfig struct {
	Path   string `mapstructure:"path" yaml:"path"`
	Stdout bool   `mapstructure:"stdout" yaml:"stdout"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// flagKeys maps command line flags to config keys
var flagKeys = map[string]string{
	"from":           "range.from",
	"to":             "range.to",
	"output":         "output.path",
	"stdout":         "output.stdout",
	"line-length":    "calendar.line_length",
	"day-sep":        "calendar.day_sep",
	"week-sep":       "calendar.week_sep",
	"weekend-marker": "calendar.weekend_marker",
	"log-file":       "log.file",
	"log-level":      "log.level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.line_length", 35)
	v.SetDefault("calendar.day_sep", "-")
	v.SetDefault("calendar.week_sep", "=")
	v.SetDefault("calendar.weekend_marker", "#")
	v.SetDefault("range.from", "2023-11-11")
	v.SetDefault("range.to", "2024-01-01")
	v.SetDefault("output.path", "output.txt")
	v.SetDefault("output.stdout", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Load loads configuration from defaults, an optional config file,
// PLAINCAL_* environment variables and the flags that were set, in
// increasing order of precedence. flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("plaincal")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.plaincal")
		v.AddConfigPath("/etc/plaincal")
	}

	v.SetEnvPrefix("PLAINCAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	// Only an explicitly requested file has to exist
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Calendar.LineLength <= 0 {
		return fmt.Errorf("calendar.line_length must be positive")
	}
	if err := singleChar("calendar.day_sep", c.Calendar.DaySep); err != nil {
		return err
	}
	if err := singleChar("calendar.week_sep", c.Calendar.WeekSep); err != nil {
		return err
	}
	if err := singleChar("calendar.weekend_marker", c.Calendar.WeekendMarker); err != nil {
		return err
	}

	if c.Range.From == "" {
		return fmt.Errorf("range.from is required")
	}
	if c.Range.To == "" {
		return fmt.Errorf("range.to is required")
	}

	if c.Output.Path == "" && !c.Output.Stdout {
		return fmt.Errorf("output.path is required unless output.stdout is set")
	}

	return nil
}

func singleChar(key, value string) error {
	if utf8.RuneCountInString(value) != 1 {
		return fmt.Errorf("%s must be exactly one character, got %q", key, value)
	}
	return nil
}

// CalendarConfig builds the formatting parameters of the listing
func (c *Config) CalendarConfig() (calendar.Config, error) {
	day, _ := utf8.DecodeRuneInString(c.Calendar.DaySep)
	week, _ := utf8.DecodeRuneInString(c.Calendar.WeekSep)
	marker, _ := utf8.DecodeRuneInString(c.Calendar.WeekendMarker)

	return calendar.NewConfig(c.Calendar.LineLength, day, week, marker)
}

// YAML renders the effective configuration
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
