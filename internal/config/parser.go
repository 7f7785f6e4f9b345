package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	brandkiterrors "github.com/tafaritech/brandkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse decodes and validates a complete catalog document.
func Parse(data []byte, source string) (*Catalog, error) {
	return parse(data, source, false)
}

// ParseOverlay decodes and validates an overlay document, which may omit the
// master brand and any brand it does not replace.
func ParseOverlay(data []byte, source string) (*Catalog, error) {
	return parse(data, source, true)
}

func parse(data []byte, source string, overlay bool) (*Catalog, error) {
	var cat Catalog

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cat); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, brandkiterrors.NewParseError(source, 0, errors.New("empty catalog document"))
		}
		return nil, brandkiterrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateCatalog(&cat, overlay); err != nil {
		return nil, err
	}

	return &cat, nil
}

// LoadFile reads a catalog document from disk.
func LoadFile(path string, overlay bool) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, brandkiterrors.NewParseError(path, 0, err)
	}
	return parse(data, path, overlay)
}

// Marshal encodes a catalog document as YAML.
func Marshal(cat *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cat); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
