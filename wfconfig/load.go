package wfconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// LoadConfig reads the TOML file at path and decodes it into a Config.
// Complexity: O(size of file).
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigRead, path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	return &cfg, nil
}
