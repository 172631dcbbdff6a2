/* ranking.go
 * Contains the ranking engine: competition ranking over a set of flag records,
 * summary statistics and multi-week aggregation
 */

package logic

import (
	"sort"

	"flagbot/api/store"
)

// RankedRecord pairs a record with its competition rank.
type RankedRecord struct {
	Record store.FlagRecord
	Rank   int
}

// Summary holds the totals displayed under a leaderboard.
type Summary struct {
	TotalPoints int
	Flaggers    int
}

// Rank orders records by weekly points descending and assigns standard
// competition ranks: tied records share a rank and the next distinct value
// resumes at its true 1-based position, so points [100, 100, 50] rank
// [1, 1, 3] and rank 2 is skipped.
// Preconditions: Receives a slice of records for one period (or aggregates)
// Postconditions: Returns a new sorted slice; the input is not reordered
func Rank(records []store.FlagRecord) []RankedRecord {
	sorted := make([]store.FlagRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WeeklyPoints > sorted[j].WeeklyPoints
	})

	ranked := make([]RankedRecord, 0, len(sorted))
	for i, record := range sorted {
		rank := i + 1
		if i > 0 && record.WeeklyPoints == sorted[i-1].WeeklyPoints {
			rank = ranked[i-1].Rank
		}
		ranked = append(ranked, RankedRecord{Record: record, Rank: rank})
	}
	return ranked
}

// TopN truncates a ranked list to its first n entries. Rank labels are
// computed over the full list before truncation, so an entry keeps its true
// rank even when the display is cut short.
func TopN(ranked []RankedRecord, n int) []RankedRecord {
	if n < 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

// Summarize returns the leaderboard totals for a set of records.
func Summarize(records []store.FlagRecord) Summary {
	total := 0
	for _, record := range records {
		total += record.WeeklyPoints
	}
	return Summary{TotalPoints: total, Flaggers: len(records)}
}

// AggregateByUser combines records spanning multiple weeks into one synthetic
// record per user: points are summed and placement sequences concatenated in
// week order, which makes monthly and all-time standings reuse the same
// ranking path as weekly ones. The synthetic record carries the user's most
// recent nickname and week key.
// Preconditions: Receives records across any number of weeks
// Postconditions: Returns one record per distinct userid, ordered by first appearance
func AggregateByUser(records []store.FlagRecord) []store.FlagRecord {
	sorted := make([]store.FlagRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Week < sorted[j].Week
	})

	byUser := make(map[string]*store.FlagRecord)
	var order []string
	for _, record := range sorted {
		agg, ok := byUser[record.UserId]
		if !ok {
			copied := record
			copied.Placements = append([]int(nil), record.Placements...)
			byUser[record.UserId] = &copied
			order = append(order, record.UserId)
			continue
		}
		agg.WeeklyPoints += record.WeeklyPoints
		agg.Placements = append(agg.Placements, record.Placements...)
		agg.Nickname = record.Nickname
		agg.Week = record.Week
		if record.Timestamp > agg.Timestamp {
			agg.Timestamp = record.Timestamp
		}
	}

	result := make([]store.FlagRecord, 0, len(order))
	for _, userID := range order {
		result = append(result, *byUser[userID])
	}
	return result
}
