/* record.go
 * Contains the record update engine: the rules for merging a validated
 * placement submission into a user's weekly flag record, and for editing the
 * most recent placement. Both operations are pure; they take explicit
 * timestamps, never touch storage, and return a new record value instead of
 * mutating the input. Serializing concurrent updates per (userid, week) is the
 * caller's job, see store.UpsertFlagRecord.
 */

package logic

import (
	"errors"

	"flagbot/api/shared"
	"flagbot/api/store"
)

// ErrCooldown is returned when a resubmission arrives before the cooldown has
// elapsed since the user's last accepted submission.
var ErrCooldown = errors.New("placement already recorded for this race")

// ErrNoHistory is returned when an edit is attempted with no placements recorded.
var ErrNoHistory = errors.New("no placement recorded this week to edit")

// ErrEditWindowClosed is returned when an edit arrives after the edit window.
var ErrEditWindowClosed = errors.New("edit window has closed")

// Submission is a single validated placement submission.
type Submission struct {
	User        shared.User
	Rank        int   // validated via ParsePlacement
	SubmittedAt int64 // epoch ms
}

// ApplySubmission merges a submission into a user's weekly record.
// A nil existing record means this is the user's first placement of the week;
// the record is created and no cooldown check applies. Otherwise the
// submission is rejected with ErrCooldown unless at least cooldownMillis have
// elapsed since the last accepted one. A negative elapsed time (clock skew,
// out-of-order delivery) also fails the cooldown check rather than being
// clamped.
// Preconditions: Receives the existing record or nil, the submission, the week
// key the submission belongs to, and the cooldown in milliseconds
// Postconditions: Returns the updated record to persist, or ErrCooldown with
// the existing record left untouched
func ApplySubmission(existing *store.FlagRecord, sub Submission, week string, cooldownMillis int64) (store.FlagRecord, error) {
	points := PointsFor(sub.Rank)

	if existing == nil {
		return store.FlagRecord{
			UserId:       sub.User.UserId,
			Nickname:     sub.User.Username,
			Timestamp:    sub.SubmittedAt,
			WeeklyPoints: points,
			Placements:   []int{sub.Rank},
			Week:         week,
		}, nil
	}

	elapsed := sub.SubmittedAt - existing.Timestamp
	if elapsed < cooldownMillis {
		return store.FlagRecord{}, ErrCooldown
	}

	updated := *existing
	updated.Nickname = sub.User.Username
	updated.Timestamp = sub.SubmittedAt
	updated.WeeklyPoints = existing.WeeklyPoints + points
	updated.Placements = make([]int, 0, len(existing.Placements)+1)
	updated.Placements = append(updated.Placements, existing.Placements...)
	updated.Placements = append(updated.Placements, sub.Rank)
	return updated, nil
}

// EditLastPlacement replaces the most recent placement in a record with a new
// rank, re-accounting the points. This is the only operation that may reduce
// WeeklyPoints. The edit must arrive strictly within editWindowMillis of the
// last accepted submission.
// Preconditions: Receives the existing record, the validated new rank, the
// edit time in epoch ms and the edit window in milliseconds
// Postconditions: Returns the updated record to persist, or ErrNoHistory /
// ErrEditWindowClosed with no state change
func EditLastPlacement(existing store.FlagRecord, newRank int, editedAt int64, editWindowMillis int64) (store.FlagRecord, error) {
	if len(existing.Placements) == 0 {
		return store.FlagRecord{}, ErrNoHistory
	}
	if editedAt-existing.Timestamp >= editWindowMillis {
		return store.FlagRecord{}, ErrEditWindowClosed
	}

	last := existing.Placements[len(existing.Placements)-1]

	updated := existing
	updated.Timestamp = editedAt
	updated.WeeklyPoints = existing.WeeklyPoints - PointsFor(last) + PointsFor(newRank)
	updated.Placements = make([]int, 0, len(existing.Placements))
	updated.Placements = append(updated.Placements, existing.Placements[:len(existing.Placements)-1]...)
	updated.Placements = append(updated.Placements, newRank)
	return updated, nil
}
