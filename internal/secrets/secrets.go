// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files and an
// optional dotenv file. Each file in the directory is one secret: the filename
// is the key name and the trimmed contents are the value. Dotenv keys are
// normalized to the same form, so SERPER_API_KEY and a file named
// serper-api-key name the same secret.
//
// Supported keys: serper-api-key.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// SerperAPIKey is the key under which the web search credential is stored.
const SerperAPIKey = "serper-api-key"

// Set maps normalized key names to secret values.
type Set map[string]string

// Load reads all files in dir, then the dotenv file at envFile. Directory
// entries win over dotenv entries with the same key. A missing directory or
// dotenv file is not an error. Unreadable files produce a warning on w.
func Load(dir, envFile string, w io.Writer) (Set, error) {
	set := Set{}

	if envFile != "" {
		env, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			for k, v := range env {
				if v = strings.TrimSpace(v); v != "" {
					set[Normalize(k)] = v
				}
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("reading env file %s: %w", envFile, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if w != nil {
				fmt.Fprintf(w, "warning: could not read secret %s: %v\n", name, err)
			}
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			set[Normalize(name)] = value
		}
	}
	return set, nil
}

// Get returns the secret stored under key, falling back to the process
// environment variable of the same name (SERPER_API_KEY for serper-api-key).
func (s Set) Get(key string) string {
	if v, ok := s[Normalize(key)]; ok {
		return v
	}
	return strings.TrimSpace(os.Getenv(EnvName(key)))
}

// Names returns the loaded key names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Normalize lowercases key and replaces underscores with dashes.
func Normalize(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "-")
}

// EnvName is the environment variable form of key.
func EnvName(key string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(key)), "-", "_")
}
