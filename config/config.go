// Package config snapshots the process environment into a plain map. All
// runtime knobs of the site (DATABASE_URL, ADMIN_ID, the Mistral and EmailJS
// credentials, PORT) are read through the typed getters below.
package config

import (
	"os"
	"strconv"
	"strings"
)

// New captures os.Environ at call time. Later environment changes are not
// reflected; the server reads its configuration once at startup.
func New() map[string]string {
	environ := os.Environ()
	cfg := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := splitEnvEntry(entry)
			cfg[key] = value
		}
	}
	return cfg
}

// assumes entry is not the empty string
func splitEnvEntry(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// GetString returns the value under key, or defaultValue when the key is
// absent. An empty value set explicitly counts as present.
func GetString(cfg map[string]string, key string, defaultValue string) string {
	if cfg == nil {
		return defaultValue
	}

	if val, ok := cfg[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns the value under key parsed as an int; absent or unparseable
// values fall back to defaultValue.
func GetInt(cfg map[string]string, key string, defaultValue int) int {
	if cfg == nil {
		return defaultValue
	}

	s, ok := cfg[key]
	if !ok {
		return defaultValue
	}

	parsed, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return parsed
}
