// Package jsonstore persists the todo list as a single JSON document.
//
// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/idilsaglam/tudu/internal/model"
)

// Load reads the whole collection from path. A missing file is created
// empty so the path is known-writable before any mutation happens.
// Unparseable content is deliberately treated as an empty list: the
// tool stays usable after manual file damage, at the cost of
// discarding whatever was stored there.
func Load(path string) (model.List, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if werr := os.WriteFile(path, []byte("[]"), 0o644); werr != nil {
				return nil, fmt.Errorf("create file: %w", werr)
			}
			slog.Debug("created empty todo file", "path", path)
			return model.List{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var todos model.List
	if err := json.Unmarshal(b, &todos); err != nil {
		slog.Warn("discarding unparseable todo file", "path", path, "error", err)
		return model.List{}, nil
	}
	slog.Debug("loaded todos", "path", path, "count", len(todos))
	return todos, nil
}

// Save serializes the full collection and replaces the file contents.
func Save(path string, todos model.List) error {
	if todos == nil {
		todos = model.List{} // marshal as [] rather than null
	}
	b, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	slog.Debug("saved todos", "path", path, "count", len(todos))
	return nil
}
