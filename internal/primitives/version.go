// Package primitives provides versioning utilities for Config.
package primitives

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// ComputeVersion computes a deterministic version for a Config.
// Priority: user-provided config.Version, else SHA256(config JSON)[:8].
// The JSON form is order-preserving, so reordering states changes the digest.
func ComputeVersion(config *Config) string {
	if config.Version != "" {
		return config.Version
	}

	data, err := json.Marshal(config)
	if err != nil {
		// Only string fields are encoded, so this is unreachable in practice
		return "invalid"
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
