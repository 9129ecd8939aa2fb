package styledtext

import (
	"errors"
	"fmt"
	"strings"
)

// Color is one of the 16 basic terminal colors (8 standard + 8 bright).
type Color int

// The 16 basic ANSI colors.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// ErrUnknownColor is returned when a color name cannot be resolved
var ErrUnknownColor = errors.New("unknown color name")

// brightOffset separates the bright color code range (90-97/100-107) from
// the standard one (30-37/40-47).
const brightOffset = 60

// Code returns the SGR code offset for the color: 0-7 for standard colors
// and 60-67 for bright ones. Adding 30 gives the foreground code, adding
// 40 the background code.
func (c Color) Code() uint8 {
	if c >= BrightBlack {
		return uint8(c-BrightBlack) + brightOffset
	}
	return uint8(c)
}

// colorNames maps each color to its display name, indexed by Color value.
var colorNames = [...]string{
	Black:         "Black",
	Red:           "Red",
	Green:         "Green",
	Yellow:        "Yellow",
	Blue:          "Blue",
	Magenta:       "Magenta",
	Cyan:          "Cyan",
	White:         "White",
	BrightBlack:   "Bright Black",
	BrightRed:     "Bright Red",
	BrightGreen:   "Bright Green",
	BrightYellow:  "Bright Yellow",
	BrightBlue:    "Bright Blue",
	BrightMagenta: "Bright Magenta",
	BrightCyan:    "Bright Cyan",
	BrightWhite:   "Bright White",
}

// String returns the human-readable color name, e.g. "Bright Magenta".
// It is intended for display and debugging, not for escape sequence output.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor resolves a color name to its Color value. Matching is
// case-insensitive and accepts spaces, hyphens, or underscores between
// words, so "bright red", "Bright-Red", and "BRIGHT_RED" are equivalent.
func ParseColor(name string) (Color, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.ReplaceAll(normalized, "_", " ")
	normalized = strings.Join(strings.Fields(normalized), " ")

	for c, colorName := range colorNames {
		if normalized == strings.ToLower(colorName) {
			return Color(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}
