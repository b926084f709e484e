package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentInitializes(t *testing.T) {
	doc := NewDocument(32)
	assert.Equal(t, []byte{ESC, '@'}, doc.Bytes())

	// Invalid width falls back to 32
	doc = NewDocument(0)
	assert.Equal(t, 32, doc.width)
}

func TestKeyValueAlignment(t *testing.T) {
	doc := NewDocument(32)
	doc.KeyValue("Subtotal:", "1200.00")

	line := doc.Bytes()[2:] // skip ESC @
	require.Equal(t, byte(LF), line[len(line)-1])

	text := string(line[:len(line)-1])
	assert.Len(t, text, 32)
	assert.Equal(t, "Subtotal:", text[:9])
	assert.Equal(t, "1200.00", text[len(text)-7:])
}

func TestKeyValueOverflowKeepsOneSpace(t *testing.T) {
	doc := NewDocument(10)
	doc.KeyValue("averylongkey", "value")

	text := string(doc.Bytes()[2:])
	assert.Equal(t, "averylongkey value\n", text)
}

func TestItemLine(t *testing.T) {
	doc := NewDocument(32)
	doc.ItemLine(2, "Cotton Shirt M", "1680.00")

	text := string(doc.Bytes()[2:])
	require.Equal(t, byte(LF), text[len(text)-1])
	assert.Len(t, text, 33)
	assert.Contains(t, text, "2x Cotton Shirt M")
	assert.Contains(t, text, "1680.00")
}

func TestSeparator(t *testing.T) {
	doc := NewDocument(16)
	doc.Separator('-')

	assert.Equal(t, "----------------\n", string(doc.Bytes()[2:]))
}

func TestQRCodeCommands(t *testing.T) {
	doc := NewDocument(32)
	doc.QRCode("abc", 3, QRECLevelL)

	out := doc.Bytes()[2:]

	// Model selection, module size, EC level
	assert.True(t, bytes.HasPrefix(out, []byte{GS, '(', 'k', 4, 0, 49, 65, 50, 0}))
	assert.Contains(t, string(out), string([]byte{GS, '(', 'k', 3, 0, 49, 67, 3}))
	assert.Contains(t, string(out), string([]byte{GS, '(', 'k', 3, 0, 49, 69, QRECLevelL}))

	// Store: payload length 3 + 3 overhead
	assert.Contains(t, string(out), string([]byte{GS, '(', 'k', 6, 0, 49, 80, 48})+"abc")

	// Print symbol comes last
	assert.True(t, bytes.HasSuffix(out, []byte{GS, '(', 'k', 3, 0, 49, 81, 48}))
}

func TestQRCodeClampsBadModuleSize(t *testing.T) {
	doc := NewDocument(32)
	doc.QRCode("x", 99, QRECLevelM)

	assert.Contains(t, string(doc.Bytes()), string([]byte{GS, '(', 'k', 3, 0, 49, 67, 3}))
}

func TestCutCommands(t *testing.T) {
	full := NewDocument(32).Cut().Bytes()
	assert.True(t, bytes.HasSuffix(full, []byte{GS, 'V', 0x00}))

	partial := NewDocument(32).PartialCut().Bytes()
	assert.True(t, bytes.HasSuffix(partial, []byte{GS, 'V', 0x01}))
}

func TestReset(t *testing.T) {
	doc := NewDocument(32)
	doc.Text("hello").Cut()
	doc.Reset()

	assert.Equal(t, []byte{ESC, '@'}, doc.Bytes())
}
