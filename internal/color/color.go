// Package color provides small helpers for coloring terminal output using
// ANSI escape sequences. Each helper wraps a piece of text in a foreground
// color and a trailing reset; the escape sequences are produced by the
// styledtext buffer so their shape matches rendered styled documents.
//
//nolint:revive // package name conflicts with standard library
package color

import (
	"fmt"

	"github.com/isseis/go-styled-text/internal/styledtext"
)

// Color represents a color function that wraps text with ANSI escape
// sequences.
type Color func(text string) string

// New creates a color function for the given foreground color.
func New(fg styledtext.Color) Color {
	return func(text string) string {
		b := styledtext.NewWithCapacity(len(text))
		b.SetForeground(fg)
		b.AppendText(text)
		return b.Render()
	}
}

// Sprintf formats according to a format specifier and colorizes the result.
func (c Color) Sprintf(format string, args ...any) string {
	return c(fmt.Sprintf(format, args...))
}

// ConditionalColor returns c when enabled, otherwise a passthrough that
// leaves the text unchanged.
func ConditionalColor(c Color, enabled bool) Color {
	if enabled {
		return c
	}
	return NoColor
}

// NoColor returns the text unchanged, for call sites that want a Color
// shaped value without any formatting.
func NoColor(text string) string {
	return text
}

// Predefined color functions
var (
	// Gray colors text in gray (bright black)
	Gray = New(styledtext.BrightBlack)

	// Green colors text in green
	Green = New(styledtext.Green)

	// Yellow colors text in yellow
	Yellow = New(styledtext.Yellow)

	// Red colors text in red
	Red = New(styledtext.Red)

	// Blue colors text in blue
	Blue = New(styledtext.Blue)

	// Purple colors text in purple
	Purple = New(styledtext.Magenta)

	// Cyan colors text in cyan
	Cyan = New(styledtext.Cyan)

	// White colors text in white
	White = New(styledtext.White)
)
