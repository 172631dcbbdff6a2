/* scope_test.go
 * Contains unit tests for record scope flag parsing
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseScope_Flags tests every accepted flag spelling
func TestParseScope_Flags(t *testing.T) {
	assert.Equal(t, ScopeWeekly, ParseScope(""))
	assert.Equal(t, ScopeWeekly, ParseScope("-w"))
	assert.Equal(t, ScopeWeekly, ParseScope("--weekly"))
	assert.Equal(t, ScopeMonthly, ParseScope("-m"))
	assert.Equal(t, ScopeMonthly, ParseScope("--monthly"))
	assert.Equal(t, ScopeAllTime, ParseScope("-a"))
	assert.Equal(t, ScopeAllTime, ParseScope("--all-time"))
}

// TestParseScope_Invalid tests unknown tokens
func TestParseScope_Invalid(t *testing.T) {
	assert.Equal(t, ScopeInvalid, ParseScope("-x"))
	assert.Equal(t, ScopeInvalid, ParseScope("weekly"))
}

// TestScope_String tests display names
func TestScope_String(t *testing.T) {
	assert.Equal(t, "weekly", ScopeWeekly.String())
	assert.Equal(t, "monthly", ScopeMonthly.String())
	assert.Equal(t, "all-time", ScopeAllTime.String())
	assert.Equal(t, "invalid", ScopeInvalid.String())
}
