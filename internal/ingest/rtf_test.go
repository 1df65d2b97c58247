package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripRTFBasicDocument(t *testing.T) {
	src := `{\rtf1\ansi\deff0 {\fonttbl {\f0 Times New Roman;}}\f0\fs24 BIBL 101 - Introduction to Biblical Studies}`
	text := StripRTF(src)

	assert.Contains(t, text, "BIBL 101 - Introduction to Biblical Studies")
	assert.NotContains(t, text, "Times New Roman")
}

func TestStripRTFParagraphBreaks(t *testing.T) {
	src := `{\rtf1 First line\par Second line\line Third}`
	text := StripRTF(src)

	assert.Contains(t, text, "First line\nSecond line\nThird")
}

func TestStripRTFEscapes(t *testing.T) {
	assert.Contains(t, StripRTF(`{\rtf1 a\{b\}c\\d}`), "a{b}c\\d")
	assert.Contains(t, StripRTF(`{\rtf1 caf\'65}`), "cafe")
}

func TestStripRTFDropsStarDestinations(t *testing.T) {
	src := `{\rtf1 {\*\generator LibreOffice}Visible text}`
	text := StripRTF(src)

	assert.Contains(t, text, "Visible text")
	assert.NotContains(t, text, "LibreOffice")
}

func TestStripRTFPlainTextPassesThrough(t *testing.T) {
	// Not actually RTF: the stripper degrades to identity-ish output
	// rather than erroring.
	assert.Equal(t, "just text", StripRTF("just text"))
}

func TestParseRTFEndToEnd(t *testing.T) {
	src := `{\rtf1\ansi\deff0 {\fonttbl {\f0 Times New Roman;}}\f0\fs24 BIBL 101 - Introduction to Biblical Studies (3 credits)\par THEO 201 - Systematic Theology}`
	result := ExtractFromText(StripRTF(src), "UTS_fall.rtf")

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Len(t, result.ExtractedCourses, 2)
}
