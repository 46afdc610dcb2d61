package forest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and validates a forest artifact from disk.
func Load(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact %s: %w", path, err)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("model artifact %s: %w", path, err)
	}

	return &f, nil
}
