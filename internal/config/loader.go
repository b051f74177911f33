package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config sources reported by Load when no file was read.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the syntax from a file extension. Anything that is
// not .toml is read as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load loads breakout configuration and reports where it came from.
// Search order: customPath -> ~/.breakout/breakout.{yaml,toml} ->
// ./configs/breakout.{yaml,toml} -> embedded default -> hardcoded default.
// Files are decoded over the defaults, so they only need the keys they change.
func Load(customPath string) (BreakoutConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decodeOverDefaults(data, FormatForPath(customPath))
		if err != nil {
			return BreakoutConfig{}, "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodeOverDefaults(data, FormatForPath(path)); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	var cfg BreakoutConfig
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "breakout.yaml"),
			filepath.Join(dir, "breakout.toml"))
	}
	return append(paths,
		filepath.Join("configs", "breakout.yaml"),
		filepath.Join("configs", "breakout.toml"))
}

// userConfigDir returns ~/.breakout, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout")
}

func decodeOverDefaults(data []byte, format Format) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := Unmarshal(data, format, &cfg); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// Unmarshal decodes data in the given format into cfg.
func Unmarshal(data []byte, format Format, cfg *BreakoutConfig) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, cfg)
	case FormatTOML:
		return toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("config: unsupported format %q", format)
	}
}

// Marshal encodes cfg in the given format.
func Marshal(cfg BreakoutConfig, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("config: unsupported format %q", format)
	}
}
