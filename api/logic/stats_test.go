/* stats_test.go
 * Contains unit tests for the aggregate flagger statistics
 */

package logic

import (
	"testing"

	"flagbot/api/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputeStats_MultiWeek tests totals, average, median and best week
func TestComputeStats_MultiWeek(t *testing.T) {
	records := []store.FlagRecord{
		{UserId: "a", Nickname: "Flagger", WeeklyPoints: 150, Placements: []int{1, 2}, Week: "2026-08-24"},
		{UserId: "a", Nickname: "Flagger", WeeklyPoints: 30, Placements: []int{5}, Week: "2026-08-31"},
	}

	stats, err := ComputeStats(records)

	require.NoError(t, err)
	assert.Equal(t, "Flagger", stats.Nickname)
	assert.Equal(t, 180, stats.TotalPoints)
	assert.Equal(t, 3, stats.TotalRaces)
	assert.Equal(t, "60.00", stats.AvgPointsPerRace)
	// Sorted placements [1, 2, 5], middle element
	assert.Equal(t, 2, stats.MedianPlacement)
	assert.Equal(t, "2026-08-24", stats.BestWeek)
	assert.Equal(t, 150, stats.BestWeekPoints)
	assert.Equal(t, []int{1, 2, 5}, stats.Placements)
}

// TestComputeStats_EvenCount tests the floor(n/2) median element pick
func TestComputeStats_EvenCount(t *testing.T) {
	records := []store.FlagRecord{
		{UserId: "a", WeeklyPoints: 175, Placements: []int{1, 2, 3, 10}, Week: "2026-08-31"},
	}

	stats, err := ComputeStats(records)

	require.NoError(t, err)
	// Sorted [1, 2, 3, 10], index 2
	assert.Equal(t, 3, stats.MedianPlacement)
}

// TestComputeStats_NonFinishMedian tests that afk placements participate in the median
func TestComputeStats_NonFinishMedian(t *testing.T) {
	records := []store.FlagRecord{
		{UserId: "a", WeeklyPoints: 30, Placements: []int{0, 0, 15}, Week: "2026-08-31"},
	}

	stats, err := ComputeStats(records)

	require.NoError(t, err)
	assert.Equal(t, NonFinish, stats.MedianPlacement)
}

// TestComputeStats_BestWeekTie tests that the earlier week wins a points tie
func TestComputeStats_BestWeekTie(t *testing.T) {
	records := []store.FlagRecord{
		{UserId: "a", WeeklyPoints: 100, Placements: []int{1}, Week: "2026-08-31"},
		{UserId: "a", WeeklyPoints: 100, Placements: []int{1}, Week: "2026-08-24"},
	}

	stats, err := ComputeStats(records)

	require.NoError(t, err)
	assert.Equal(t, "2026-08-24", stats.BestWeek)
}

// TestComputeStats_Empty tests the empty input error
func TestComputeStats_Empty(t *testing.T) {
	_, err := ComputeStats(nil)

	assert.Error(t, err)
}
