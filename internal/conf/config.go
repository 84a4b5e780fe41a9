package conf

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPath is the main configuration file; drop-ins live in DefaultPath.d.
const DefaultPath = "/etc/cdf-settings/config.toml"

// defaultConfig is the base layer applied before the main file and drop-ins.
//
//go:embed config.toml
var defaultConfig string

// Config is the resolved configuration of the cdf-settings command.
type Config struct {
	// IniPath is the plugin INI file reconciled at startup.
	IniPath  string
	LogLevel slog.Level
}

// Update applies non-nil values from a configDTO. Unknown log levels are
// ignored and keep the previous level.
func (c *Config) Update(dto configDTO) {
	if dto.IniPath != nil {
		c.IniPath = *dto.IniPath
	}
	if dto.LogLevel != nil {
		if level, ok := ParseLevel(*dto.LogLevel); ok {
			c.LogLevel = level
		}
	}
}

// ParseLevel maps DEBUG, INFO, WARN and ERROR (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// ConfigSource orchestrates loading configuration from multiple sources.
// See the Read method.
type ConfigSource struct {
	Path      string
	DropInDir string
}

// NewConfigSource returns a ConfigSource for path with its ".d" drop-in
// directory next to it.
func NewConfigSource(path string) *ConfigSource {
	return &ConfigSource{Path: path, DropInDir: path + ".d"}
}

// Read loads and returns the complete Config by merging all layers:
// 1. Embedded defaults
// 2. Main configuration file
// 3. Drop-in files
func (cs *ConfigSource) Read() (Config, error) {
	resolved := Config{}

	// Start with embedded defaults
	dto, err := parseConfigDTO(defaultConfig)
	if err != nil {
		slog.Error("failed to parse embedded defaults", "error", err)
		return resolved, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}
	resolved.Update(dto)

	layers, err := cs.layers()
	if err != nil {
		slog.Error("failed to list drop-in files", "error", err, "dir", cs.DropInDir)
		return resolved, err
	}

	// The main file and every drop-in are optional, but a file that exists
	// must parse: a broken override should not silently fall back to defaults.
	for _, path := range layers {
		dto, found, err := readConfigFile(path)
		if err != nil {
			return resolved, err
		}
		if !found {
			slog.Debug("configuration file not found", "path", path)
			continue
		}
		slog.Debug("applying configuration file", "path", path)
		resolved.Update(dto)
	}

	return resolved, nil
}

type configDTO struct {
	IniPath  *string `toml:"ini-path"`
	LogLevel *string `toml:"log-level"`
}

func parseConfigDTO(data string) (configDTO, error) {
	var dto configDTO
	if _, err := toml.Decode(data, &dto); err != nil {
		return dto, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return dto, nil
}

// layers lists the files applied on top of the embedded defaults, main file
// first, then *.toml drop-ins by name. A missing drop-in directory adds
// nothing.
func (cs *ConfigSource) layers() ([]string, error) {
	paths := []string{cs.Path}
	if cs.DropInDir == "" {
		return paths, nil
	}

	// os.ReadDir sorts entries by filename
	entries, err := os.ReadDir(cs.DropInDir)
	if errors.Is(err, fs.ErrNotExist) {
		return paths, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read drop-in directory %s: %w", cs.DropInDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		paths = append(paths, filepath.Join(cs.DropInDir, entry.Name()))
	}
	return paths, nil
}

// readConfigFile parses path. found is false when the file does not exist.
func readConfigFile(path string) (dto configDTO, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return dto, false, nil
	}
	if err != nil {
		return dto, false, fmt.Errorf("failed to load %s: %w", path, err)
	}

	dto, err = parseConfigDTO(string(data))
	if err != nil {
		return dto, true, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return dto, true, nil
}
