package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardlist/internal/card"
	"github.com/arcanaland/cardlist/internal/parser"
)

// Config represents the application configuration
type Config struct {
	InputDir       string `toml:"input_dir"`
	OutputFile     string `toml:"output_file"`
	ImageBaseURL   string `toml:"image_base_url"`
	ImageCacheBust string `toml:"image_cache_bust"`
	AltArtMarker   string `toml:"alt_art_marker"`
	DefaultType    string `toml:"default_type"`
	IDPattern      string `toml:"id_pattern"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		InputDir:       "cards/en",
		OutputFile:     "CardList.json",
		ImageBaseURL:   "https://en.onepiece-cardgame.com/images/cardlist/card",
		ImageCacheBust: "240419",
		AltArtMarker:   "_p",
		DefaultType:    card.DefaultType,
		IDPattern:      parser.DefaultIDPattern,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardlist", "config.toml")
}

// LoadConfig loads the config file at path, or the default config file when
// path is empty. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	config := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// CreateDefaultConfig writes the default config to path, or to the default
// config file when path is empty. An existing file is left untouched.
func CreateDefaultConfig(path string) (string, error) {
	if path == "" {
		path = GetConfigFilePath()
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(Default()); err != nil {
		return "", fmt.Errorf("error encoding config: %w", err)
	}

	return path, nil
}

// ImageURL returns the card image URL for id
func (c *Config) ImageURL(id string) string {
	if c.ImageBaseURL == "" {
		return ""
	}
	url := strings.TrimRight(c.ImageBaseURL, "/") + "/" + id + ".png"
	if c.ImageCacheBust != "" {
		url += "?" + c.ImageCacheBust
	}
	return url
}
