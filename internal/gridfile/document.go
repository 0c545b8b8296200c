package gridfile

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/gridcheck/internal/errors"
)

// Format is the serialization of a grid document.
type Format string

// Supported document formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat indicates a file extension gridfile cannot decode.
var ErrUnknownFormat = errors.New("unknown grid document format")

// Document is the decoded, not yet validated, form of a grid file.
type Document struct {
	Columns []ColumnSpec     `json:"columns" yaml:"columns" toml:"columns"`
	Rows    []map[string]any `json:"rows" yaml:"rows" toml:"rows"`
}

// ColumnSpec declares one column.
type ColumnSpec struct {
	BindTo     string          `json:"bindTo" yaml:"bindTo" toml:"bindTo"`
	Title      string          `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Type       string          `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Validators []ValidatorSpec `json:"validators,omitempty" yaml:"validators,omitempty" toml:"validators,omitempty"`
}

// ValidatorSpec declares one validator of a column.
type ValidatorSpec struct {
	// Type selects the builder in the Registry.
	Type string `json:"type" yaml:"type" toml:"type"`
	// Pattern is the regular expression of a regex validator.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	// Name overrides the validator's display name.
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	// IgnoreViolation marks the validator as advisory.
	IgnoreViolation bool `json:"ignoreViolation,omitempty" yaml:"ignoreViolation,omitempty" toml:"ignoreViolation,omitempty"`
}

// FormatFromPath picks the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%s", path)
	}
}

// Decode parses data as a grid document. Unknown keys outside of rows are
// rejected so that misspelled options do not pass silently.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "parsing YAML")
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "parsing TOML")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "parsing JSON")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	return &doc, nil
}
