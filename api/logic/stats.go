/* stats.go
 * Contains the per-flagger aggregate statistics shown by the rank command for
 * monthly and all-time scopes
 */

package logic

import (
	"fmt"
	"sort"

	"flagbot/api/store"
)

// FlaggerStats summarises one user's records across a set of weeks.
type FlaggerStats struct {
	Nickname         string
	TotalPoints      int
	TotalRaces       int
	AvgPointsPerRace string // formatted to 2 decimal places
	MedianPlacement  int    // NonFinish renders as "afk/out" at the presentation layer
	BestWeek         string
	BestWeekPoints   int
	Placements       []int // concatenated in week order, chart input
}

// ComputeStats aggregates one user's weekly records into display statistics.
// The median is the floor(n/2) element of the numerically sorted placement
// sequence. Best week is the single week with the highest points; earlier
// weeks win ties.
// Preconditions: Receives a non-empty slice of one user's records
// Postconditions: Returns the computed stats, or an error for an empty slice
func ComputeStats(records []store.FlagRecord) (FlaggerStats, error) {
	if len(records) == 0 {
		return FlaggerStats{}, fmt.Errorf("no records to compute stats from")
	}

	sorted := make([]store.FlagRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Week < sorted[j].Week
	})

	stats := FlaggerStats{
		BestWeek:       sorted[0].Week,
		BestWeekPoints: sorted[0].WeeklyPoints,
	}
	for _, record := range sorted {
		stats.Nickname = record.Nickname
		stats.TotalPoints += record.WeeklyPoints
		stats.TotalRaces += len(record.Placements)
		stats.Placements = append(stats.Placements, record.Placements...)
		if record.WeeklyPoints > stats.BestWeekPoints {
			stats.BestWeek = record.Week
			stats.BestWeekPoints = record.WeeklyPoints
		}
	}

	if stats.TotalRaces > 0 {
		stats.AvgPointsPerRace = fmt.Sprintf("%.2f", float64(stats.TotalPoints)/float64(stats.TotalRaces))

		median := make([]int, len(stats.Placements))
		copy(median, stats.Placements)
		sort.Ints(median)
		stats.MedianPlacement = median[len(median)/2]
	} else {
		stats.AvgPointsPerRace = "0.00"
	}

	return stats, nil
}
