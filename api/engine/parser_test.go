/* parser_test.go
 * Contains unit tests for the lenient set score parser
 */

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseSetScore_Valid tests a plain score string
func TestParseSetScore_Valid(t *testing.T) {
	set := ParseSetScore("21-15")

	assert.NotNil(t, set)
	assert.Equal(t, 21, set.A)
	assert.Equal(t, 15, set.B)
	assert.Equal(t, 6, set.Margin())
}

// TestParseSetScore_WhitespaceAroundSeparator tests optional whitespace handling
func TestParseSetScore_WhitespaceAroundSeparator(t *testing.T) {
	set := ParseSetScore("  21 - 15 ")

	assert.NotNil(t, set)
	assert.Equal(t, 21, set.A)
	assert.Equal(t, 15, set.B)
}

// TestParseSetScore_Empty tests that empty and blank input counts as not played
func TestParseSetScore_Empty(t *testing.T) {
	assert.Nil(t, ParseSetScore(""))
	assert.Nil(t, ParseSetScore("   "))
}

// TestParseSetScore_LoneSeparator tests that a lone separator counts as not played
func TestParseSetScore_LoneSeparator(t *testing.T) {
	assert.Nil(t, ParseSetScore("-"))
}

// TestParseSetScore_Malformed tests that garbage never errors, it parses to not played
func TestParseSetScore_Malformed(t *testing.T) {
	assert.Nil(t, ParseSetScore("abc"))
	assert.Nil(t, ParseSetScore("21-"))
	assert.Nil(t, ParseSetScore("-15"))
	assert.Nil(t, ParseSetScore("21–15")) // en dash, as OCR tends to produce
	assert.Nil(t, ParseSetScore("21-15-3"))
	assert.Nil(t, ParseSetScore("21-x"))
	assert.Nil(t, ParseSetScore("+21-15"))
	assert.Nil(t, ParseSetScore("21.5-15"))
}

// TestParseSetScore_NoUpperBound tests that the parser tolerates values over the set cap;
// bounding is the UI's concern, the engine just has to take them in stride
func TestParseSetScore_NoUpperBound(t *testing.T) {
	set := ParseSetScore("35-10")

	assert.NotNil(t, set)
	assert.Equal(t, 35, set.A)
	assert.Equal(t, 10, set.B)
}

// TestParseSetScore_Idempotent tests that parsing the canonical rendering of a parsed
// pair yields the same pair
func TestParseSetScore_Idempotent(t *testing.T) {
	set := ParseSetScore("18-21")
	assert.NotNil(t, set)

	again := ParseSetScore(set.String())
	assert.NotNil(t, again)
	assert.Equal(t, *set, *again)
}
