// Package config loads server configuration from defaults, an optional YAML
// file, a .env file and environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/raphaelgruber/ytmcp-go/internal/youtube"
)

// Environment variable names.
const (
	EnvConfigFile       = "YTMCP_CONFIG_FILE"
	EnvServerName       = "YTMCP_SERVER_NAME"
	EnvLogFile          = "YTMCP_LOG_FILE"
	EnvLogLevel         = "YTMCP_LOG_LEVEL"
	EnvNullPairCompat   = "YTMCP_NULL_PAIR_COMPAT"
	EnvThumbnailQuality = "YTMCP_THUMBNAIL_QUALITY"
	EnvHTTPAddr         = "YTMCP_HTTP_ADDR"
)

// DefaultServerName is the implementation name reported to MCP clients.
const DefaultServerName = "yt-mcp-server"

// Config holds all configuration values.
type Config struct {
	ServerName string

	// Logging
	LogFile  string
	LogLevel slog.Level

	// NullPairCompat keeps the [null, null] result for URLs that yield no
	// video ID. When false the failure is reported as a tool error.
	NullPairCompat bool

	// ThumbnailQuality is used by get_thumbnail_url when the caller omits quality.
	ThumbnailQuality youtube.Quality

	// HTTPAddr is the listen address of ytmcp-server.
	HTTPAddr string
}

// fileConfig mirrors Config for YAML decoding. Pointers distinguish unset keys.
type fileConfig struct {
	ServerName       *string `yaml:"server_name"`
	LogFile          *string `yaml:"log_file"`
	LogLevel         *string `yaml:"log_level"`
	NullPairCompat   *bool   `yaml:"null_pair_compat"`
	ThumbnailQuality *string `yaml:"thumbnail_quality"`
	HTTPAddr         *string `yaml:"http_addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServerName:       DefaultServerName,
		LogFile:          "/tmp/ytmcp.log",
		LogLevel:         slog.LevelInfo,
		NullPairCompat:   true,
		ThumbnailQuality: youtube.QualityMaxRes,
		HTTPAddr:         ":8585",
	}
}

// Load builds the configuration: defaults, then the YAML file named by
// YTMCP_CONFIG_FILE, then environment variables. A .env file in the working
// directory is loaded first and never overrides variables already set.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv(EnvConfigFile); path != "" {
		var err error
		cfg, err = LoadFile(path, cfg)
		if err != nil {
			return Config{}, err
		}
	}

	cfg = applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto base.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg := base
	if fc.ServerName != nil {
		cfg.ServerName = *fc.ServerName
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = parseLogLevel(*fc.LogLevel)
	}
	if fc.NullPairCompat != nil {
		cfg.NullPairCompat = *fc.NullPairCompat
	}
	if fc.ThumbnailQuality != nil {
		cfg.ThumbnailQuality = youtube.Quality(*fc.ThumbnailQuality)
	}
	if fc.HTTPAddr != nil {
		cfg.HTTPAddr = *fc.HTTPAddr
	}
	return cfg, nil
}

func applyEnv(cfg Config) Config {
	cfg.ServerName = getEnv(EnvServerName, cfg.ServerName)
	cfg.LogFile = getEnv(EnvLogFile, cfg.LogFile)
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = parseLogLevel(v)
	}
	cfg.NullPairCompat = getBool(EnvNullPairCompat, cfg.NullPairCompat)
	cfg.ThumbnailQuality = youtube.Quality(getEnv(EnvThumbnailQuality, string(cfg.ThumbnailQuality)))
	cfg.HTTPAddr = getEnv(EnvHTTPAddr, cfg.HTTPAddr)
	return cfg
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ServerName) == "" {
		errs = append(errs, errors.New("server name is required (set YTMCP_SERVER_NAME or server_name)"))
	}
	if _, err := youtube.ParseQuality(string(c.ThumbnailQuality)); err != nil {
		errs = append(errs, fmt.Errorf("thumbnail_quality: %w", err))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
