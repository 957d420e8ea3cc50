package report

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Builder assembles a fixed-width plain-text report, the kind a hotel keeps
// as an offline record of a Cierre Z. Lines are padded to a character width
// matching a ticket printer layout (32 for 58mm paper, 48 for 80mm).
type Builder struct {
	sb    strings.Builder
	width int
}

// NewBuilder creates a report builder with the given character width
func NewBuilder(charWidth int) *Builder {
	if charWidth <= 0 {
		charWidth = 32
	}
	return &Builder{width: charWidth}
}

// Title writes a centered, uppercased heading
func (b *Builder) Title(s string) *Builder {
	s = strings.ToUpper(s)
	// Column widths count runes, not bytes: "habitación" occupies ten
	// printer columns, not eleven
	if utf8.RuneCountInString(s) >= b.width {
		b.sb.WriteString(s)
		b.sb.WriteByte('\n')
		return b
	}
	pad := (b.width - utf8.RuneCountInString(s)) / 2
	b.sb.WriteString(strings.Repeat(" ", pad))
	b.sb.WriteString(s)
	b.sb.WriteByte('\n')
	return b
}

// Text writes a line of text
func (b *Builder) Text(s string) *Builder {
	b.sb.WriteString(s)
	b.sb.WriteByte('\n')
	return b
}

// TextF writes a formatted line of text
func (b *Builder) TextF(format string, args ...interface{}) *Builder {
	b.sb.WriteString(fmt.Sprintf(format, args...))
	b.sb.WriteByte('\n')
	return b
}

// Separator writes a full-width separator line
func (b *Builder) Separator(char byte) *Builder {
	b.sb.WriteString(strings.Repeat(string(char), b.width))
	b.sb.WriteByte('\n')
	return b
}

// KeyValue writes a left-aligned key and right-aligned value on one line.
// Example: "Total              1.234,50"
func (b *Builder) KeyValue(key, value string) *Builder {
	spaces := b.width - utf8.RuneCountInString(key) - utf8.RuneCountInString(value)
	if spaces < 1 {
		spaces = 1
	}
	b.sb.WriteString(key)
	b.sb.WriteString(strings.Repeat(" ", spaces))
	b.sb.WriteString(value)
	b.sb.WriteByte('\n')
	return b
}

// ItemLine writes a line item: qty x name, then a right-aligned amount.
// Example: "2x Club Sandwich         24.00"
func (b *Builder) ItemLine(qty int, name, amount string) *Builder {
	prefix := fmt.Sprintf("%dx %s", qty, name)
	spaces := b.width - utf8.RuneCountInString(prefix) - utf8.RuneCountInString(amount)
	if spaces < 1 {
		spaces = 1
	}
	b.sb.WriteString(prefix)
	b.sb.WriteString(strings.Repeat(" ", spaces))
	b.sb.WriteString(amount)
	b.sb.WriteByte('\n')
	return b
}

// LineFeed writes an empty line
func (b *Builder) LineFeed() *Builder {
	b.sb.WriteByte('\n')
	return b
}

// String returns the accumulated report text
func (b *Builder) String() string {
	return b.sb.String()
}
