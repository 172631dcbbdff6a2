/* api.go
 * This file contains the public methods for interacting with this package. For
 * consistent results, functions should only be called from this file, not the
 * logic or store sub packages. Every method takes the submission or query time
 * as an explicit argument so the layer stays deterministic and testable; the
 * bot handlers pass time.Now().
 */

package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"flagbot/api/logic"
	"flagbot/api/shared"
	"flagbot/api/store"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.mongodb.org/mongo-driver/mongo"
)

// API provides methods for interacting with the flagbot data layer
type API struct {
	Store              store.Interface
	SubmissionCooldown time.Duration
	EditWindow         time.Duration
}

// NewAPI creates a new API instance with the provided configuration
func NewAPI(dbName string, mongoURI string, submissionCooldown, editWindow time.Duration) (*API, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName is required")
	}

	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		Store:              s,
		SubmissionCooldown: submissionCooldown,
		EditWindow:         editWindow,
	}, nil
}

// RecordPlacement validates a placement token and merges it into the user's
// record for the week containing at. The first submission of a week creates
// the record; later ones are subject to the resubmission cooldown.
// Preconditions: Receives the submitting user, the raw placement token and the submission time
// Postconditions: Persists the updated record and returns a receipt, or
// logic.ErrInvalidPlacement / logic.ErrCooldown, or a wrapped storage error
func (a *API) RecordPlacement(user shared.User, token string, at time.Time) (PlacementReceipt, error) {
	rank, err := logic.ParsePlacement(token)
	if err != nil {
		return PlacementReceipt{}, err
	}

	week := shared.WeekKey(at)

	var existing *store.FlagRecord
	record, err := a.Store.GetFlagRecord(user.UserId, week)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return PlacementReceipt{}, err
		}
		// First submission of the week
	} else {
		existing = &record
	}

	sub := logic.Submission{User: user, Rank: rank, SubmittedAt: at.UnixMilli()}
	updated, err := logic.ApplySubmission(existing, sub, week, a.SubmissionCooldown.Milliseconds())
	if err != nil {
		return PlacementReceipt{}, err
	}

	if err := a.Store.UpsertFlagRecord(updated); err != nil {
		return PlacementReceipt{}, err
	}

	return PlacementReceipt{
		Rank:         rank,
		Points:       logic.PointsFor(rank),
		WeeklyPoints: updated.WeeklyPoints,
		RaceCount:    len(updated.Placements),
	}, nil
}

// EditLastPlacement replaces the user's most recently recorded placement for
// the week containing at, inside the edit window.
// Preconditions: Receives the editing user, the raw replacement token and the edit time
// Postconditions: Persists the corrected record and returns a receipt;
// mongo.ErrNoDocuments when the user has no record this week, or
// logic.ErrInvalidPlacement / logic.ErrNoHistory / logic.ErrEditWindowClosed
func (a *API) EditLastPlacement(user shared.User, token string, at time.Time) (EditReceipt, error) {
	rank, err := logic.ParsePlacement(token)
	if err != nil {
		return EditReceipt{}, err
	}

	week := shared.WeekKey(at)
	existing, err := a.Store.GetFlagRecord(user.UserId, week)
	if err != nil {
		return EditReceipt{}, err
	}

	updated, err := logic.EditLastPlacement(existing, rank, at.UnixMilli(), a.EditWindow.Milliseconds())
	if err != nil {
		return EditReceipt{}, err
	}

	if err := a.Store.UpsertFlagRecord(updated); err != nil {
		return EditReceipt{}, err
	}

	return EditReceipt{
		NewRank:      rank,
		NewPoints:    logic.PointsFor(rank),
		WeeklyPoints: updated.WeeklyPoints,
	}, nil
}

// GetWeeklyStats returns a user's rank and record within the current week.
// Preconditions: Receives the user ID and the query time
// Postconditions: Returns the user's weekly standing, or mongo.ErrNoDocuments
// when the user has no record this week
func (a *API) GetWeeklyStats(userID string, at time.Time) (WeeklyStats, error) {
	week := shared.WeekKey(at)
	records, err := a.Store.GetWeekRecords(week)
	if err != nil {
		return WeeklyStats{}, err
	}

	for _, entry := range logic.Rank(records) {
		if entry.Record.UserId == userID {
			return WeeklyStats{
				Nickname:     entry.Record.Nickname,
				Week:         week,
				Rank:         entry.Rank,
				WeeklyPoints: entry.Record.WeeklyPoints,
				Placements:   entry.Record.Placements,
			}, nil
		}
	}
	return WeeklyStats{}, mongo.ErrNoDocuments
}

// GetAggregateStats returns a user's statistics aggregated over the month
// containing at, or over all recorded weeks.
// Preconditions: Receives the user ID, a monthly or all-time scope and the query time
// Postconditions: Returns the aggregate stats, or mongo.ErrNoDocuments when
// the user has no records in the scope
func (a *API) GetAggregateStats(userID string, scope logic.Scope, at time.Time) (AggregateStats, error) {
	records, err := a.Store.GetUserRecords(userID)
	if err != nil {
		return AggregateStats{}, err
	}

	label := "All-time"
	if scope == logic.ScopeMonthly {
		label = shared.MonthLabel(at)
		records = filterWeeks(records, shared.MonthWeekKeys(at))
	} else if scope != logic.ScopeAllTime {
		return AggregateStats{}, fmt.Errorf("aggregate stats require a monthly or all-time scope, got %s", scope)
	}

	if len(records) == 0 {
		return AggregateStats{}, mongo.ErrNoDocuments
	}

	stats, err := logic.ComputeStats(records)
	if err != nil {
		return AggregateStats{}, err
	}
	return AggregateStats{Label: label, Stats: stats}, nil
}

// GetLeaderboard returns the ranked standings for a scope, truncated to topN
// entries for display. Rank labels and the totals always cover the full
// record set, not the truncated list. Monthly and all-time scopes aggregate
// each user's weeks into one synthetic record before ranking.
// Preconditions: Receives the scope, the display cutoff and the query time
// Postconditions: Returns the leaderboard, or a wrapped storage error
func (a *API) GetLeaderboard(scope logic.Scope, topN int, at time.Time) (Leaderboard, error) {
	var records []store.FlagRecord
	var err error
	week := ""

	switch scope {
	case logic.ScopeWeekly:
		week = shared.WeekKey(at)
		records, err = a.Store.GetWeekRecords(week)
	case logic.ScopeMonthly:
		records, err = a.Store.GetWeeksRecords(shared.MonthWeekKeys(at))
		if err == nil {
			records = logic.AggregateByUser(records)
		}
	case logic.ScopeAllTime:
		records, err = a.Store.GetAllRecords()
		if err == nil {
			records = logic.AggregateByUser(records)
		}
	default:
		return Leaderboard{}, fmt.Errorf("unknown leaderboard scope: %s", scope)
	}
	if err != nil {
		return Leaderboard{}, err
	}

	summary := logic.Summarize(records)
	ranked := logic.TopN(logic.Rank(records), topN)

	entries := make([]LeaderboardEntry, 0, len(ranked))
	for _, entry := range ranked {
		entries = append(entries, LeaderboardEntry{
			Rank:     entry.Rank,
			Nickname: entry.Record.Nickname,
			Points:   entry.Record.WeeklyPoints,
		})
	}

	return Leaderboard{
		Scope:       scope,
		ScopeName:   scope.String(),
		Week:        week,
		Entries:     entries,
		TotalPoints: summary.TotalPoints,
		Flaggers:    summary.Flaggers,
	}, nil
}

// FindFlaggerByName resolves a nickname query against this week's flaggers
// using fuzzy matching, preferring an exact (case-insensitive) match when the
// query is ambiguous.
// Preconditions: Receives the nickname query and the query time
// Postconditions: Returns the matched user's ID, or mongo.ErrNoDocuments when
// nothing matches
func (a *API) FindFlaggerByName(query string, at time.Time) (string, error) {
	records, err := a.Store.GetWeekRecords(shared.WeekKey(at))
	if err != nil {
		return "", err
	}

	lookup := make(map[string]string)
	var nicknamesLower []string
	for _, record := range records {
		lower := strings.ToLower(record.Nickname)
		lookup[lower] = record.UserId
		nicknamesLower = append(nicknamesLower, lower)
	}

	lowerQuery := strings.ToLower(query)
	fuzzyResults := fuzzy.RankFind(lowerQuery, nicknamesLower)
	if len(fuzzyResults) == 0 {
		return "", mongo.ErrNoDocuments
	}

	// If there are multiple matches, check to see if theres an exact match with the input
	best := ""
	for i := range fuzzyResults {
		if fuzzyResults[i].Target == lowerQuery {
			best = fuzzyResults[i].Target
		}
	}
	if best == "" {
		best = fuzzyResults[0].Target
	}
	return lookup[best], nil
}

// filterWeeks keeps only the records whose week key is in the given set
func filterWeeks(records []store.FlagRecord, weeks []string) []store.FlagRecord {
	allowed := make(map[string]bool, len(weeks))
	for _, week := range weeks {
		allowed[week] = true
	}

	var filtered []store.FlagRecord
	for _, record := range records {
		if allowed[record.Week] {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
