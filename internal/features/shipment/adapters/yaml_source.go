package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"freight-emissions/internal/features/shipment/domain"

	"gopkg.in/yaml.v3"
)

// YAMLFileSource implements ports.InputSource for a YAML or JSON document on disk.
type YAMLFileSource struct {
	path string
}

// NewYAMLFileSource creates a new YAMLFileSource.
func NewYAMLFileSource(path string) *YAMLFileSource {
	return &YAMLFileSource{path: path}
}

// Load reads and decodes the input document.
func (s *YAMLFileSource) Load(ctx context.Context) (*domain.Input, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	input, err := DecodeInput(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return input, nil
}

// DecodeInput decodes an input document. JSON is accepted as a subset of YAML.
// Unknown fields are rejected.
func DecodeInput(r io.Reader) (*domain.Input, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var input domain.Input
	if err := dec.Decode(&input); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty input document")
		}
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	return &input, nil
}
