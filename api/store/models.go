/* models.go
 * This file contains the structs that relate to DB objects. A FlagRecord is one
 * participant's accumulated state for one ranking week; there is exactly one
 * document per (userid, week) pair. Placements are stored as an integer array
 * in submission order; the 0 entry is the afk/out (non-finish) marker. Any
 * casing or shape normalization happens here at the persistence boundary, the
 * logic package only ever sees this typed struct.
 */

package store

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FlagRecord represents one user's flag results for one week
type FlagRecord struct {
	Id           primitive.ObjectID `bson:"_id,omitempty"`
	UserId       string             `bson:"userid"`
	Nickname     string             `bson:"nickname"`
	Timestamp    int64              `bson:"timestamp"` // epoch ms of the most recent accepted submission
	WeeklyPoints int                `bson:"weeklypoints"`
	Placements   []int              `bson:"placements"`
	Week         string             `bson:"week"` // UTC Monday key, see shared.WeekKey
}
