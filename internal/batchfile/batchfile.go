// Package batchfile reads batch input files for the CLI. Files are YAML or
// JSON lists of {id, text} entries; entries without an id are assigned a
// UUID before they reach the SDK, which requires one.
package batchfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/discourses/discourses-go"
)

// item tolerates files that omit ids; discourses.BatchItem does not.
type item struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// Read loads batch items from the given file. The format is picked by
// extension: .json is JSON, everything else is parsed as YAML.
func Read(path string) ([]discourses.BatchItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	var items []item
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%s contains no items", path)
	}

	out := make([]discourses.BatchItem, 0, len(items))
	seen := make(map[string]int, len(items))
	for i, entry := range items {
		if strings.TrimSpace(entry.Text) == "" {
			return nil, fmt.Errorf("%s: item %d has no text", path, i)
		}

		id := strings.TrimSpace(entry.ID)
		if id == "" {
			id = uuid.NewString()
		}
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("%s: item %d reuses id %q from item %d", path, i, id, prev)
		}
		seen[id] = i

		out = append(out, discourses.BatchItem{ID: id, Text: entry.Text})
	}
	return out, nil
}
