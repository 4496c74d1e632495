// Package config handles application configuration loading.
package config

import (
	"github.com/classic-computing/gametiles/grid"
	"github.com/classic-computing/gametiles/library"
)

// Config holds all application settings.
type Config struct {
	Library    LibraryConfig   `yaml:"library"`
	Thumbnails ThumbnailConfig `yaml:"thumbnails"`
	Logging    LoggingConfig   `yaml:"logging"`
}

// LibraryConfig holds scan settings.
type LibraryConfig struct {
	ScanRoot   string   `yaml:"scan_root"`  // Root directory to scan for games
	Extensions []string `yaml:"extensions"` // Game file extension allow-list
}

// ThumbnailConfig holds the tile bounding box thumbnails are fitted into.
type ThumbnailConfig struct {
	TileWidth  int `yaml:"tile_width"`
	TileHeight int `yaml:"tile_height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Library: LibraryConfig{
			Extensions: append([]string(nil), library.DefaultExtensions...),
		},
		Thumbnails: ThumbnailConfig{
			TileWidth:  grid.TileWidth,
			TileHeight: grid.TileHeight,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
