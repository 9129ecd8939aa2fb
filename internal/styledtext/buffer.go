// Package styledtext builds plain text annotated with ANSI SGR style
// markers and renders it into a single string with embedded escape
// sequences. Markers record the byte offset at which a style directive was
// requested; rendering merges directives that share an offset into one
// escape sequence and always terminates the output with a reset so the
// terminal is never left in a styled state.
//
// A Buffer is a single-owner mutable value with no internal locking.
// Callers that share one across goroutines must serialize access
// themselves.
package styledtext

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ANSI escape sequence framing
const (
	escapeStart = "\x1b["
	escapeEnd   = "m"
)

// escapeLen is the encoded size of a single-code escape sequence, used to
// pre-size the render output.
const escapeLen = len(escapeStart) + 1 + len(escapeEnd)

// disableOffset is added to a format base code to turn the attribute off,
// e.g. bold (2) becomes not-bold (22).
const disableOffset = 20

// SGR base codes pushed by the style setters.
const (
	codeReset      = 0
	codeFaint      = 1
	codeBold       = 2
	codeItalic     = 3
	codeUnderline  = 4
	codeSlowBlink  = 5
	codeFastBlink  = 6
	codeForeground = 30
	codeBackground = 40
)

// marker records that an SGR code applies from a given byte offset of the
// raw text onward. Markers are created only by the Buffer's styling
// operations and are immutable afterwards.
type marker struct {
	offset int
	code   uint8
}

// Buffer accumulates raw text and an insertion-ordered list of style
// markers. Marker offsets are monotonically non-decreasing because every
// styling operation records the buffer length at the moment it is called; a
// directive can never apply retroactively to earlier text.
//
// The zero value is ready to use.
type Buffer struct {
	text    []byte
	markers []marker
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewWithCapacity creates an empty buffer whose text storage is
// pre-allocated for n bytes. The marker list is not pre-allocated.
func NewWithCapacity(n int) *Buffer {
	return &Buffer{text: make([]byte, 0, n)}
}

// pushCode records an SGR code at the current end of the text.
func (b *Buffer) pushCode(code uint8) {
	b.markers = append(b.markers, marker{offset: len(b.text), code: code})
}

// pushColorCode records base+offset for the given color.
func (b *Buffer) pushColorCode(c Color, base uint8) {
	b.pushCode(base + c.Code())
}

// pushFormatCode records a format toggle, adding disableOffset when the
// attribute is being turned off.
func (b *Buffer) pushFormatCode(code uint8, enable bool) {
	if !enable {
		code += disableOffset
	}
	b.pushCode(code)
}

// MarkReset records a reset directive (code 0) at the current offset,
// cancelling all prior styling for the text that follows.
func (b *Buffer) MarkReset() {
	b.pushCode(codeReset)
}

// SetForeground records a foreground color directive at the current offset.
func (b *Buffer) SetForeground(c Color) {
	b.pushColorCode(c, codeForeground)
}

// SetBackground records a background color directive at the current offset.
func (b *Buffer) SetBackground(c Color) {
	b.pushColorCode(c, codeBackground)
}

// SetFaint enables or disables faint rendering from the current offset.
func (b *Buffer) SetFaint(enable bool) {
	b.pushFormatCode(codeFaint, enable)
}

// SetBold enables or disables bold rendering from the current offset.
func (b *Buffer) SetBold(enable bool) {
	b.pushFormatCode(codeBold, enable)
}

// SetItalic enables or disables italic rendering from the current offset.
func (b *Buffer) SetItalic(enable bool) {
	b.pushFormatCode(codeItalic, enable)
}

// SetUnderline enables or disables underlining from the current offset.
func (b *Buffer) SetUnderline(enable bool) {
	b.pushFormatCode(codeUnderline, enable)
}

// SetSlowBlink enables or disables slow blinking from the current offset.
func (b *Buffer) SetSlowBlink(enable bool) {
	b.pushFormatCode(codeSlowBlink, enable)
}

// SetFastBlink enables or disables fast blinking from the current offset.
func (b *Buffer) SetFastBlink(enable bool) {
	b.pushFormatCode(codeFastBlink, enable)
}

// AppendRune appends a single character to the raw text.
func (b *Buffer) AppendRune(r rune) {
	b.text = utf8.AppendRune(b.text, r)
}

// AppendText appends a string to the raw text.
func (b *Buffer) AppendText(s string) {
	b.text = append(b.text, s...)
}

// Raw returns the literal text without any styling. The returned string is
// an independent copy; later mutations of the buffer do not affect it.
func (b *Buffer) Raw() string {
	return string(b.text)
}

// Render produces the styled string. Escape sequences are interleaved with
// the literal text according to the recorded markers: markers at the same
// offset share one escape sequence with their codes joined by ';' in call
// order, and the output always ends with a reset sequence. A buffer with no
// markers renders as its raw text with no escape sequences at all.
//
// Render does not mutate the buffer; repeated calls without intervening
// mutation return identical strings.
func (b *Buffer) Render() string {
	if len(b.markers) == 0 {
		return b.Raw()
	}

	var sb strings.Builder
	sb.Grow(len(b.text) + (len(b.markers)+1)*escapeLen)

	offset := 0
	for i, m := range b.markers {
		switch {
		case i == 0:
			sb.Write(b.text[:m.offset])
			sb.WriteString(escapeStart)
		case m.offset != offset:
			sb.WriteString(escapeEnd)
			sb.Write(b.text[offset:m.offset])
			sb.WriteString(escapeStart)
		default:
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(int(m.code)))
		offset = m.offset
	}

	sb.WriteString(escapeEnd)
	sb.Write(b.text[offset:])

	// Unconditional trailing reset, even if the last marker was already a
	// reset, so printed output never leaves the terminal styled.
	sb.WriteString(escapeStart)
	sb.WriteByte('0')
	sb.WriteString(escapeEnd)

	return sb.String()
}

// String implements fmt.Stringer by returning the rendered styled string.
func (b *Buffer) String() string {
	return b.Render()
}
