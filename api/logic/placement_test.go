/* placement_test.go
 * Contains unit tests for placement token validation
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParsePlacement_NonFinishKeywords tests the afk/out/dnf keywords, case-insensitively
func TestParsePlacement_NonFinishKeywords(t *testing.T) {
	for _, token := range []string{"afk", "AFK", "Afk", "out", "OUT", "dnf", "DNF"} {
		rank, err := ParsePlacement(token)

		assert.NoError(t, err, "token %q", token)
		assert.Equal(t, NonFinish, rank, "token %q", token)
	}
}

// TestParsePlacement_NumericRanks tests valid numeric placements
func TestParsePlacement_NumericRanks(t *testing.T) {
	rank, err := ParsePlacement("5")
	assert.NoError(t, err)
	assert.Equal(t, 5, rank)

	rank, err = ParsePlacement("1")
	assert.NoError(t, err)
	assert.Equal(t, 1, rank)

	rank, err = ParsePlacement("20")
	assert.NoError(t, err)
	assert.Equal(t, 20, rank)
}

// TestParsePlacement_LiteralZero tests that the digit "0" is rejected,
// only the keywords may produce the non-finish marker
func TestParsePlacement_LiteralZero(t *testing.T) {
	_, err := ParsePlacement("0")

	assert.ErrorIs(t, err, ErrInvalidPlacement)
}

// TestParsePlacement_OutOfRange tests numeric tokens outside 1-20
func TestParsePlacement_OutOfRange(t *testing.T) {
	_, err := ParsePlacement("21")
	assert.ErrorIs(t, err, ErrInvalidPlacement)

	_, err = ParsePlacement("999")
	assert.ErrorIs(t, err, ErrInvalidPlacement)
}

// TestParsePlacement_Garbage tests empty, negative and non-numeric tokens
func TestParsePlacement_Garbage(t *testing.T) {
	for _, token := range []string{"", "-1", "abc", "1st", "5.5", " 5", "afk2"} {
		_, err := ParsePlacement(token)

		assert.ErrorIs(t, err, ErrInvalidPlacement, "token %q", token)
	}
}
