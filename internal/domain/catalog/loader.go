package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a catalog source.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrMalformed         = errors.New("malformed catalog")
	ErrEmpty             = errors.New("catalog has no variables")
	ErrMissingName       = errors.New("variable name is required")
)

// LoadError reports why a catalog could not be loaded.
// The process must not serve requests after a LoadError.
type LoadError struct {
	Path  string
	Index int // record index, -1 when the failure is not tied to a record
	Err   error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("load catalog")
	if e.Path != "" {
		fmt.Fprintf(&b, " %s", e.Path)
	}
	if e.Index >= 0 {
		fmt.Fprintf(&b, ": record %d", e.Index)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and validates the catalog file at path.
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &LoadError{Path: path, Index: -1, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Index: -1, Err: err}
	}

	cat, err := Parse(data, format)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
			return nil, loadErr
		}
		return nil, &LoadError{Path: path, Index: -1, Err: err}
	}
	return cat, nil
}

// Parse decodes catalog records from data. Optional attributes default to empty
// values; every record must have a non-blank name.
func Parse(data []byte, format Format) (*Catalog, error) {
	var records []Variable

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, &LoadError{Index: -1, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, &LoadError{Index: -1, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
		}
	default:
		return nil, &LoadError{Index: -1, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)}
	}

	if len(records) == 0 {
		return nil, &LoadError{Index: -1, Err: ErrEmpty}
	}

	for i := range records {
		if strings.TrimSpace(records[i].Name) == "" {
			return nil, &LoadError{Index: i, Err: ErrMissingName}
		}
		if records[i].Aliases == nil {
			records[i].Aliases = []string{}
		}
		if records[i].Applications == nil {
			records[i].Applications = []string{}
		}
	}

	return New(records), nil
}
