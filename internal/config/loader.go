package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/isseis/go-styled-text/internal/styledtext"
)

// supportedVersion is the only document format version this loader accepts.
// An absent version field is treated as the current version.
const supportedVersion = "1.0"

// Parse decodes and validates a TOML document from raw content.
func Parse(content []byte) (*Document, error) {
	var doc Document
	if err := toml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads a TOML document from a file and parses it.
func Load(path string) (*Document, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return Parse(content)
}

// validate checks document-level constraints and resolves every color name
// so composition cannot fail on input that passed validation.
func (d *Document) validate() error {
	if d.Version != "" && d.Version != supportedVersion {
		return fmt.Errorf("%w: %q (supported: %q)", ErrUnsupportedVersion, d.Version, supportedVersion)
	}
	if len(d.Spans) == 0 {
		return ErrNoSpans
	}

	for i := range d.Spans {
		if err := d.Spans[i].validate(); err != nil {
			return &SpanError{Index: i, Err: err}
		}
	}
	return nil
}

func (s *Span) validate() error {
	if s.Foreground != "" {
		if _, err := styledtext.ParseColor(s.Foreground); err != nil {
			return fmt.Errorf("foreground: %w", err)
		}
	}
	if s.Background != "" {
		if _, err := styledtext.ParseColor(s.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	return nil
}
