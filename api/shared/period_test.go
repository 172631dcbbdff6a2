/* period_test.go
 * Contains unit tests for period.go functions
 */

package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestWeekStart_MidWeek tests that a Wednesday maps back to its Monday
func TestWeekStart_MidWeek(t *testing.T) {
	// Wednesday 2026-09-02
	in := time.Date(2026, 9, 2, 15, 30, 0, 0, time.UTC)
	got := WeekStart(in)

	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), got)
}

// TestWeekStart_Monday tests that a Monday maps to itself at midnight
func TestWeekStart_Monday(t *testing.T) {
	in := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	got := WeekStart(in)

	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), got)
}

// TestWeekStart_Sunday tests that a Sunday belongs to the week started six days earlier
func TestWeekStart_Sunday(t *testing.T) {
	in := time.Date(2026, 9, 6, 1, 0, 0, 0, time.UTC)
	got := WeekStart(in)

	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), got)
}

// TestWeekStart_NonUTCInput tests that non-UTC times are normalized first
func TestWeekStart_NonUTCInput(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	// Monday 02:00 local is Sunday 16:00 UTC, so the week started the previous Monday
	in := time.Date(2026, 9, 7, 2, 0, 0, 0, loc)
	got := WeekStart(in)

	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), got)
}

// TestWeekKey_Format tests the key layout
func TestWeekKey_Format(t *testing.T) {
	in := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-08-31", WeekKey(in))
}

// TestMonthWeekKeys_September2026 tests month grouping by week start
func TestMonthWeekKeys_September2026(t *testing.T) {
	// September 2026 starts on a Tuesday; Mondays in it: 7, 14, 21, 28
	in := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	keys := MonthWeekKeys(in)

	assert.Equal(t, []string{"2026-09-07", "2026-09-14", "2026-09-21", "2026-09-28"}, keys)
}

// TestMonthWeekKeys_MonthStartingOnMonday tests a month whose first day is a Monday
func TestMonthWeekKeys_MonthStartingOnMonday(t *testing.T) {
	// June 2026 starts on a Monday; Mondays: 1, 8, 15, 22, 29
	in := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	keys := MonthWeekKeys(in)

	assert.Equal(t, []string{"2026-06-01", "2026-06-08", "2026-06-15", "2026-06-22", "2026-06-29"}, keys)
}

// TestMonthLabel tests the stats title label
func TestMonthLabel(t *testing.T) {
	in := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "September 2026", MonthLabel(in))
}
