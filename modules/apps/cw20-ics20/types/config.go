package types

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// AllowListConfig is the on-disk form of an allow list seed:
//
//	[[allow]]
//	contract = "cosmos1..."
//	gas_limit = 1234567
type AllowListConfig struct {
	Allow []AllowedInfo `toml:"allow"`
}

// LoadAllowListConfig reads and validates an allow list seed file.
func LoadAllowListConfig(path string) ([]AllowedInfo, error) {
	if !strings.HasSuffix(path, ".toml") {
		return nil, fmt.Errorf("allow list config %s must be a .toml file", path)
	}

	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read allow list config: %w", err)
	}

	return ParseAllowListConfig(bz)
}

// ParseAllowListConfig decodes and validates TOML allow list entries.
func ParseAllowListConfig(bz []byte) ([]AllowedInfo, error) {
	var cfg AllowListConfig
	if err := toml.Unmarshal(bz, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse allow list config: %w", err)
	}

	seen := make(map[string]bool, len(cfg.Allow))
	for i, entry := range cfg.Allow {
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("allow entry %d: %w", i, err)
		}
		if seen[entry.Contract] {
			return nil, fmt.Errorf("allow entry %d: duplicate contract %s", i, entry.Contract)
		}
		seen[entry.Contract] = true
	}

	return cfg.Allow, nil
}
