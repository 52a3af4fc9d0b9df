// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key name and the
// file contents (trimmed) are the value.
//
// Supported key files: google-api-key, google-cx.
package secrets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Key file names.
const (
	GoogleAPIKey = "google-api-key"
	GoogleCX     = "google-cx"
)

// ConfigKeys maps each supported key file to the configuration key it fills.
var ConfigKeys = map[string]string{
	GoogleAPIKey: "search.api_key",
	GoogleCX:     "search.engine_id",
}

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files are logged as warnings but do not abort.
func Load(ctx context.Context, dir string) (map[string]string, error) {
	log := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("secret", name).Msg("Could not read secret")
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Defaults returns the configuration values supplied by secrets, keyed by
// configuration key. Callers register them with the lowest precedence so
// flags, environment and config files still win.
func Defaults(secrets map[string]string) map[string]string {
	out := make(map[string]string)
	for file, key := range ConfigKeys {
		if v, ok := secrets[file]; ok {
			out[key] = v
		}
	}
	return out
}

// Names returns the sorted key names in secrets.
func Names(secrets map[string]string) []string {
	keys := make([]string, 0, len(secrets))
	for k := range secrets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
