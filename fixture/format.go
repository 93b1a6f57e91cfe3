package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
)

// Format selects the on-disk encoding of a Record.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps "json", "yaml" or "yml" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("ParseFormat: %q: %w", s, ErrUnknownFormat)
	}
}

// formatOf picks the Format from a file extension.
func formatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("no extension in %q: %w", path, ErrUnknownFormat)
	}

	return ParseFormat(ext)
}

// FileName returns "undirected_graph_<id>_<n>_nodes.<format>".
func FileName(id, n int, f Format) string {
	return fmt.Sprintf("undirected_graph_%d_%d_nodes.%s", id, n, f)
}

// Encode serializes rec. JSON is indented with two spaces.
func Encode(rec Record, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(rec, "", "  ")
	case FormatYAML:
		return yaml.Marshal(rec)
	default:
		return nil, fmt.Errorf("Encode: %q: %w", f, ErrUnknownFormat)
	}
}

// Decode parses data written by Encode.
func Decode(data []byte, f Format) (Record, error) {
	var rec Record
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &rec)
	case FormatYAML:
		err = yaml.Unmarshal(data, &rec)
	default:
		return Record{}, fmt.Errorf("Decode: %q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return Record{}, fmt.Errorf("Decode: %v: %w", err, ErrBadRecord)
	}

	return rec, nil
}

// Write encodes rec into dir/FileName(rec.GraphID, n, f), creating dir when
// missing, and returns the written path.
func Write(dir string, rec Record, n int, f Format) (string, error) {
	data, err := Encode(rec, f)
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("Write: %w", err)
	}
	path := filepath.Join(dir, FileName(rec.GraphID, n, f))
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("Write: %w", err)
	}

	return path, nil
}

// Read loads a Record, choosing the decoder from the file extension
// (.json, .yaml, .yml).
func Read(path string) (Record, error) {
	f, err := formatOf(path)
	if err != nil {
		return Record{}, fmt.Errorf("Read: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("Read: %w", err)
	}
	rec, err := Decode(data, f)
	if err != nil {
		return Record{}, fmt.Errorf("Read %s: %w", path, err)
	}

	return rec, nil
}
