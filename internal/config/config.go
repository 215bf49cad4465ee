package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/username/school-calendar/internal/extract"
)

// Config represents application configuration
type Config struct {
	Sections SectionsConfig `mapstructure:"sections"`
	Events   EventsConfig   `mapstructure:"events"`
	Dates    DatesConfig    `mapstructure:"dates"`
	Fetch    FetchConfig    `mapstructure:"fetch"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
}

// SectionsConfig holds the header lines that bound the holidays section
type SectionsConfig struct {
	HolidayHeader string   `mapstructure:"holiday_header"`
	EndMarkers    []string `mapstructure:"end_markers"`
}

// EventsConfig lists the single-day events to record, in precedence order
type EventsConfig struct {
	Markers   []string `mapstructure:"markers"`
	TermBegin string   `mapstructure:"term_begin"` // event marking the first day of school
	TermEnd   string   `mapstructure:"term_end"`
}

// DatesConfig controls written date validation
type DatesConfig struct {
	StrictWeekday bool `mapstructure:"strict_weekday"` // reject "Tuesday, September 2, 2024"
}

// FetchConfig controls downloading calendars given as URLs
type FetchConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// OutputConfig represents output rendering configuration
type OutputConfig struct {
	Format string `mapstructure:"format"` // "text", "json" or "ics"
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // empty logs to stderr
	Level string `mapstructure:"level"`
}

// Defaults follow the vocabulary the extractor ships with
var (
	DefaultHolidayHeader = extract.DefaultHolidayHeader
	DefaultEndMarkers    = extract.DefaultSectionEndMarkers
	DefaultEventMarkers  = extract.DefaultEventMarkers
)

var validFormats = []string{"text", "json", "ics"}

// Load loads configuration from file. With an empty path the usual
// locations are searched and a missing file means defaults only.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.school-calendar")
	}

	// SCHOOL_CALENDAR_OUTPUT_FORMAT=json overrides output.format
	v.SetEnvPrefix("SCHOOL_CALENDAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

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

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sections.holiday_header", DefaultHolidayHeader)
	v.SetDefault("sections.end_markers", DefaultEndMarkers)
	v.SetDefault("events.markers", DefaultEventMarkers)
	v.SetDefault("events.term_begin", DefaultEventMarkers[0])
	v.SetDefault("events.term_end", DefaultEventMarkers[1])
	v.SetDefault("dates.strict_weekday", true)
	v.SetDefault("fetch.timeout", "30s")
	v.SetDefault("fetch.user_agent", "school-calendar/1.0")
	v.SetDefault("output.format", "text")
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Sections.HolidayHeader) == "" {
		return fmt.Errorf("sections.holiday_header is required")
	}
	if len(c.Sections.EndMarkers) == 0 {
		return fmt.Errorf("sections.end_markers must list at least one header")
	}
	for i, m := range c.Sections.EndMarkers {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("sections.end_markers[%d] is empty", i)
		}
		if strings.Contains(c.Sections.HolidayHeader, m) {
			return fmt.Errorf("sections.end_markers[%d] %q is part of the holiday header", i, m)
		}
	}

	for i, m := range c.Events.Markers {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("events.markers[%d] is empty", i)
		}
	}

	if c.Fetch.Timeout < 0 {
		return fmt.Errorf("fetch.timeout must not be negative")
	}

	if !isValidFormat(c.Output.Format) {
		return fmt.Errorf("output.format must be one of %s, got '%s'",
			strings.Join(validFormats, ", "), c.Output.Format)
	}

	return nil
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}
