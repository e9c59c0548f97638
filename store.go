package tweetsnap

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Store persists raw API responses and extraction results under a single
// output directory as pretty-printed UTF-8 JSON. Non-ASCII characters are
// written as-is, matching what the API returned.
type Store struct {
	dir string
}

// NewStore creates the output directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// SaveRaw writes a raw API response verbatim (re-indented) under a
// filename keyed by shape and tweet ID. Returns the written path.
func (s *Store) SaveRaw(shape Shape, tweetID string, body []byte) (string, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("decode raw response: %w", err)
	}
	name := fmt.Sprintf("%s_%s.json", shape.filePrefix(), tweetID)
	path := filepath.Join(s.dir, name)
	if err := writeJSON(path, doc); err != nil {
		return "", err
	}
	slog.Debug("raw response saved", slog.String("path", path))
	return path, nil
}

// SaveResult writes an extraction result under the given filename.
// Returns the written path.
func (s *Store) SaveResult(filename string, res *ExtractionResult) (string, error) {
	path := filepath.Join(s.dir, filename)
	if err := writeJSON(path, res); err != nil {
		return "", err
	}
	slog.Debug("extracted data saved", slog.String("path", path))
	return path, nil
}

func writeJSON(path string, v any) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
