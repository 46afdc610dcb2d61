package feature

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// LoadSchema reads an ordered feature column list from a JSON array
// artifact written by the training pipeline.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema artifact: %w", err)
	}

	var columns []string
	if err := json.Unmarshal(data, &columns); err != nil {
		return nil, fmt.Errorf("failed to parse schema artifact %s: %w", path, err)
	}

	return NewSchema(columns)
}

// LoadIndicators reads the need and want keyword artifacts. Either file
// being absent or malformed falls back to the built-in defaults for that
// set, so the extractor always has indicators to work with.
func LoadIndicators(needPath, wantPath string) *Indicators {
	need := loadKeywords(needPath, "need", defaultNeedIndicators)
	want := loadKeywords(wantPath, "want", defaultWantIndicators)
	return NewIndicators(need, want)
}

func loadKeywords(path, set string, defaults []string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("indicator artifact unavailable, using built-in defaults",
			"set", set,
			"path", path,
			"error", err)
		return defaults
	}

	var keywords []string
	if err := json.Unmarshal(data, &keywords); err != nil {
		slog.Warn("indicator artifact malformed, using built-in defaults",
			"set", set,
			"path", path,
			"error", err)
		return defaults
	}

	if len(keywords) == 0 {
		slog.Warn("indicator artifact empty, using built-in defaults",
			"set", set,
			"path", path)
		return defaults
	}

	return keywords
}
