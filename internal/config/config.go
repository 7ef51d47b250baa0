package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// FullVersion returns a concatenated version string
func FullVersion() string {
	return fmt.Sprintf("%s-%s-%s", Version, GitCommit, BuildDate)
}

const (
	FormatHTML       = "html"
	FormatTable      = "table"
	FormatJSON       = "json"
	FormatJSONPretty = "json-pretty"
	FormatYAML       = "yaml"
	FormatCSV        = "csv"
	FormatText       = "txt"
)

var validFormats = map[string]bool{
	FormatHTML: true, FormatTable: true, FormatJSON: true, FormatJSONPretty: true,
	FormatYAML: true, FormatCSV: true, FormatText: true, "text": true,
}

// NormalizeFormat lower-cases a format string and strips stray quotes
func NormalizeFormat(format string) string {
	return strings.Trim(strings.ToLower(strings.TrimSpace(format)), "\"")
}

// ValidateFormat returns an error for output formats tocview cannot write
func ValidateFormat(format string) error {
	if !validFormats[NormalizeFormat(format)] {
		return fmt.Errorf("invalid output format: %s", format)
	}
	return nil
}

// Config holds the global configuration for tocview
type Config struct {
	OutputFormat string   `mapstructure:"output"`
	Verbosity    int      `mapstructure:"verbose"`
	Theme        string   `mapstructure:"theme"`
	Columns      []string `mapstructure:"columns"` // overrides the default schema
	TableClass   string   `mapstructure:"table_class"`
	HeadClass    string   `mapstructure:"head_class"`
	LogFile      string   `mapstructure:"log_file"`

	// Runtime only
	ConfigPath string       `mapstructure:"-"`
	Logger     *slog.Logger `mapstructure:"-"`
	LogLevel   *slog.LevelVar
}

var (
	instance *Config
	once     sync.Once
)

const (
	LevelTrace slog.Level = -8
)

// Get returns the global configuration singleton
func Get() *Config {
	once.Do(func() {
		lvl := &slog.LevelVar{}
		lvl.Set(slog.LevelInfo)
		instance = &Config{
			Logger:       slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})),
			LogLevel:     lvl,
			OutputFormat: FormatHTML,
			TableClass:   "table table-striped table-hover",
			HeadClass:    "thead-dark",
		}
	})
	return instance
}

// SetupLogging initializes the global logger based on verbosity
func (c *Config) SetupLogging() {
	c.setupLogging(os.Stderr)
}

func (c *Config) setupLogging(fallback io.Writer) {
	var level slog.Level
	switch {
	case c.Verbosity >= 2:
		level = LevelTrace
	case c.Verbosity >= 1:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	if c.LogLevel == nil {
		c.LogLevel = &slog.LevelVar{}
	}
	c.LogLevel.Set(level)

	opts := &slog.HandlerOptions{
		Level: c.LogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				level := a.Value.Any().(slog.Level)
				if level == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}

	writer := fallback
	var logFileErr error
	if c.LogFile != "" {
		f, err := openLogFile(c.LogFile)
		if err == nil {
			writer = f
		} else {
			logFileErr = err
		}
	}

	handler := slog.NewTextHandler(writer, opts)
	c.Logger = slog.New(handler)
	slog.SetDefault(c.Logger)

	if logFileErr != nil {
		c.Logger.Warn("Config: log file unavailable, logging to stderr", "log_file", c.LogFile, "error", logFileErr)
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}

// Enabled returns true if the given level is enabled
func (c *Config) Enabled(level slog.Level) bool {
	return c.LogLevel.Level() <= level
}
