package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultFeedSize is the number of content ids returned by a news feed
	DefaultFeedSize = 10
	// DefaultRetention is the number of posts kept per user
	DefaultRetention = 10
)

var ErrInvalidLimit = errors.New("limit must be positive")

// TomlFeed holds the limits applied by the feed store. Both must be positive.
type TomlFeed struct {
	FeedSize  int `toml:"feed_size"`
	Retention int `toml:"retention"`
}

// Config represents the top-level configuration
type Config struct {
	Feed TomlFeed `toml:"feed"`
}

func Default() *Config {
	return &Config{
		Feed: TomlFeed{
			FeedSize:  DefaultFeedSize,
			Retention: DefaultRetention,
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a TOML document on top of the defaults. Keys left out of the
// document keep their default value.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if config.Feed.FeedSize <= 0 {
		return nil, fmt.Errorf("feed_size %d: %w", config.Feed.FeedSize, ErrInvalidLimit)
	}
	if config.Feed.Retention <= 0 {
		return nil, fmt.Errorf("retention %d: %w", config.Feed.Retention, ErrInvalidLimit)
	}

	return config, nil
}
