/* models.go
 * This file contains the structs returned to api consumers. These are plain
 * structured values; all message formatting happens in the bot package.
 */

package api

import (
	"flagbot/api/logic"
)

// PlacementReceipt reports an accepted placement submission.
type PlacementReceipt struct {
	Rank         int // 0 means afk/out
	Points       int // points earned by this submission
	WeeklyPoints int // running total after the submission
	RaceCount    int // placements recorded this week
}

// EditReceipt reports an accepted placement edit.
type EditReceipt struct {
	NewRank      int
	NewPoints    int
	WeeklyPoints int
}

// WeeklyStats is one user's standing within the current week.
type WeeklyStats struct {
	Nickname     string
	Week         string
	Rank         int
	WeeklyPoints int
	Placements   []int
}

// AggregateStats is one user's standing across a month or all time.
type AggregateStats struct {
	Label string // e.g. "September 2026" or "All-time"
	Stats logic.FlaggerStats
}

// LeaderboardEntry is one row of a leaderboard.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Nickname string `json:"nickname"`
	Points   int    `json:"points"`
}

// Leaderboard is the ranked standings for a scope, truncated for display but
// carrying totals over the full record set.
type Leaderboard struct {
	Scope       logic.Scope        `json:"-"`
	ScopeName   string             `json:"scope"`
	Week        string             `json:"week,omitempty"` // weekly scope only
	Entries     []LeaderboardEntry `json:"entries"`
	TotalPoints int                `json:"totalPoints"`
	Flaggers    int                `json:"flaggers"`
}
