package report

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleIsCenteredAndUppercased(t *testing.T) {
	b := NewBuilder(20)
	b.Title("cierre")

	line := strings.TrimRight(b.String(), "\n")
	assert.Equal(t, "       CIERRE", line)
}

func TestKeyValueRightAlignsValue(t *testing.T) {
	b := NewBuilder(20)
	b.KeyValue("Total", "12.50")

	line := strings.TrimRight(b.String(), "\n")
	assert.Len(t, line, 20)
	assert.True(t, strings.HasPrefix(line, "Total"))
	assert.True(t, strings.HasSuffix(line, "12.50"))
}

func TestItemLine(t *testing.T) {
	b := NewBuilder(32)
	b.ItemLine(2, "Club Sandwich", "24.00")

	line := strings.TrimRight(b.String(), "\n")
	assert.Len(t, line, 32)
	assert.True(t, strings.HasPrefix(line, "2x Club Sandwich"))
	assert.True(t, strings.HasSuffix(line, "24.00"))
}

func TestAccentedLabelsAlignByRune(t *testing.T) {
	// "Cargo habitación" is 16 runes but 17 bytes; padding must count runes
	// so accented labels line up with ASCII ones on the ticket
	b := NewBuilder(32)
	b.KeyValue("Cargo habitación", "10.00")
	b.KeyValue("Efectivo", "15.50")

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 32, utf8.RuneCountInString(line))
		assert.True(t, strings.HasSuffix(line, "0"))
	}

	b = NewBuilder(32)
	b.ItemLine(1, "Café con leche", "2.50")
	line := strings.TrimRight(b.String(), "\n")
	assert.Equal(t, 32, utf8.RuneCountInString(line))
	assert.True(t, strings.HasSuffix(line, "2.50"))

	b = NewBuilder(20)
	b.Title("habitación")
	line = strings.TrimRight(b.String(), "\n")
	assert.Equal(t, "     HABITACIÓN", line)
}

func TestSeparatorFillsWidth(t *testing.T) {
	b := NewBuilder(16)
	b.Separator('-')

	assert.Equal(t, strings.Repeat("-", 16)+"\n", b.String())
}

func TestOverlongLinesKeepOneSpace(t *testing.T) {
	b := NewBuilder(10)
	b.KeyValue("A very long key", "9.99")

	line := strings.TrimRight(b.String(), "\n")
	require.Contains(t, line, "A very long key 9.99")
}

func TestBuilderChains(t *testing.T) {
	out := NewBuilder(32).
		Title("Cierre Z").
		Separator('=').
		KeyValue("Fecha", "14/03/2026").
		LineFeed().
		String()

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, lines[0], "CIERRE Z")
}
