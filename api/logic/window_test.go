/* window_test.go
 * Contains unit tests for the flag race time window checks
 */

package logic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestIsFlagHour tests the fixed race hours
func TestIsFlagHour(t *testing.T) {
	for _, hour := range []int{12, 19, 21, 22, 23} {
		assert.True(t, IsFlagHour(hour), "hour %d", hour)
	}
	for _, hour := range []int{0, 11, 13, 18, 20} {
		assert.False(t, IsFlagHour(hour), "hour %d", hour)
	}
}

// TestInSubmissionWindow_Open tests minutes inside the window
func TestInSubmissionWindow_Open(t *testing.T) {
	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	assert.True(t, InSubmissionWindow(at, 15))

	at = time.Date(2026, 9, 1, 23, 14, 59, 0, time.UTC)
	assert.True(t, InSubmissionWindow(at, 15))
}

// TestInSubmissionWindow_Closed tests the boundary minute and off hours
func TestInSubmissionWindow_Closed(t *testing.T) {
	// Minute 15 is outside a 15 minute window
	at := time.Date(2026, 9, 1, 12, 15, 0, 0, time.UTC)
	assert.False(t, InSubmissionWindow(at, 15))

	// Right hour range, wrong hour
	at = time.Date(2026, 9, 1, 13, 5, 0, 0, time.UTC)
	assert.False(t, InSubmissionWindow(at, 15))
}

// TestInSubmissionWindow_NonUTC tests that local times are converted first
func TestInSubmissionWindow_NonUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	// 14:05 local is 12:05 UTC
	at := time.Date(2026, 9, 1, 14, 5, 0, 0, loc)

	assert.True(t, InSubmissionWindow(at, 15))
}
