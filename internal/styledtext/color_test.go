package styledtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorCode(t *testing.T) {
	tests := []struct {
		color Color
		code  uint8
	}{
		{Black, 0},
		{Red, 1},
		{Green, 2},
		{Yellow, 3},
		{Blue, 4},
		{Magenta, 5},
		{Cyan, 6},
		{White, 7},
		{BrightBlack, 60},
		{BrightRed, 61},
		{BrightGreen, 62},
		{BrightYellow, 63},
		{BrightBlue, 64},
		{BrightMagenta, 65},
		{BrightCyan, 66},
		{BrightWhite, 67},
	}

	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.color.Code())
		})
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "Red", Red.String())
	assert.Equal(t, "Bright Magenta", BrightMagenta.String())
	assert.Equal(t, "Color(99)", Color(99).String())
	assert.Equal(t, "Color(-1)", Color(-1).String())
}

func TestParseColorRoundTrip(t *testing.T) {
	for c := Black; c <= BrightWhite; c++ {
		parsed, err := ParseColor(c.String())
		require.NoError(t, err, "name %q must parse", c.String())
		assert.Equal(t, c, parsed)
	}
}

func TestParseColorNormalization(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"red", Red},
		{"RED", Red},
		{"  White ", White},
		{"bright red", BrightRed},
		{"Bright-Red", BrightRed},
		{"BRIGHT_RED", BrightRed},
		{"bright   cyan", BrightCyan},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, parsed)
		})
	}
}

func TestParseColorUnknown(t *testing.T) {
	_, err := ParseColor("chartreuse")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownColor)
	assert.Contains(t, err.Error(), "chartreuse")
}
