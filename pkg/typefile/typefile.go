package typefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/bycontract/pkg/verify"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Definitions maps type names to aliases (string) or shapes (verify.Shape).
type Definitions map[string]any

// Names returns the type names in sorted order.
func (d Definitions) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registrar accepts custom type definitions. *bycontract.Engine implements it.
type Registrar interface {
	Typedef(name string, definition any) error
}

type document struct {
	Types map[string]any `yaml:"types" json:"types"`
}

// FormatOf picks a format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads and parses a type file, choosing the format by extension.
func Load(path string) (Definitions, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, format)
}

// Parse decodes a type document.
func Parse(data []byte, format Format) (Definitions, error) {
	var doc document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Join(ErrDecode, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Join(ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return FromMap(doc.Types)
}

// FromMap converts decoded data (strings and nested string-keyed maps) into
// definitions.
func FromMap(types map[string]any) (Definitions, error) {
	defs := make(Definitions, len(types))
	for name, raw := range types {
		def, err := definition(raw, name)
		if err != nil {
			return nil, err
		}
		defs[name] = def
	}
	return defs, nil
}

func definition(raw any, path string) (any, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case map[string]any:
		shape := make(verify.Shape, len(v))
		for field, nested := range v {
			def, err := definition(nested, path+"."+field)
			if err != nil {
				return nil, err
			}
			shape[field] = def
		}
		return shape, nil
	}
	return nil, fmt.Errorf("%w: %s: expected a type expression or a mapping, got %T", ErrInvalidDefinition, path, raw)
}

// Register adds every definition to reg in name order and stops at the
// first rejected one.
func Register(reg Registrar, defs Definitions) error {
	for _, name := range defs.Names() {
		if err := reg.Typedef(name, defs[name]); err != nil {
			return errors.Join(ErrRegister, fmt.Errorf("type %q: %w", name, err))
		}
	}
	return nil
}

// LoadInto loads a type file and registers its definitions.
func LoadInto(reg Registrar, path string) error {
	defs, err := Load(path)
	if err != nil {
		return err
	}
	return Register(reg, defs)
}
