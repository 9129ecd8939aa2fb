// Package config loads styled document definitions from TOML files and
// composes them into styledtext buffers. A document is an ordered list of
// spans; each span carries literal text and the style directives to record
// immediately before it.
package config

import (
	"github.com/isseis/go-styled-text/internal/styledtext"
)

// Document is the top-level TOML structure.
type Document struct {
	Version string `toml:"version"`
	Spans   []Span `toml:"spans"`
}

// Span is one styled segment of a document. The color fields hold color
// names resolved by styledtext.ParseColor. The toggle fields are tri-state:
// nil records no directive, true records the enable code, false the
// disable code.
type Span struct {
	Text       string `toml:"text"`
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Reset      bool   `toml:"reset"`
	Faint      *bool  `toml:"faint"`
	Bold       *bool  `toml:"bold"`
	Italic     *bool  `toml:"italic"`
	Underline  *bool  `toml:"underline"`
	SlowBlink  *bool  `toml:"slow_blink"`
	FastBlink  *bool  `toml:"fast_blink"`
}

// Compose applies the document's spans in order onto a fresh buffer.
// Within a span, directives are recorded before the text in a fixed order:
// reset, foreground, background, then the toggles by ascending base code.
func (d *Document) Compose() (*styledtext.Buffer, error) {
	size := 0
	for _, span := range d.Spans {
		size += len(span.Text)
	}

	b := styledtext.NewWithCapacity(size)
	for i := range d.Spans {
		if err := d.Spans[i].apply(b); err != nil {
			return nil, &SpanError{Index: i, Err: err}
		}
	}
	return b, nil
}

func (s *Span) apply(b *styledtext.Buffer) error {
	if s.Reset {
		b.MarkReset()
	}
	if s.Foreground != "" {
		c, err := styledtext.ParseColor(s.Foreground)
		if err != nil {
			return err
		}
		b.SetForeground(c)
	}
	if s.Background != "" {
		c, err := styledtext.ParseColor(s.Background)
		if err != nil {
			return err
		}
		b.SetBackground(c)
	}
	if s.Faint != nil {
		b.SetFaint(*s.Faint)
	}
	if s.Bold != nil {
		b.SetBold(*s.Bold)
	}
	if s.Italic != nil {
		b.SetItalic(*s.Italic)
	}
	if s.Underline != nil {
		b.SetUnderline(*s.Underline)
	}
	if s.SlowBlink != nil {
		b.SetSlowBlink(*s.SlowBlink)
	}
	if s.FastBlink != nil {
		b.SetFastBlink(*s.FastBlink)
	}

	b.AppendText(s.Text)
	return nil
}
