/* records.go
 * Contains the methods for interacting with the flag_records collection
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetFlagRecord does a DB lookup for one user's record for one week
// Preconditions: Receives strings containing the user ID and week key
// Postconditions: Returns the record if it exists, mongo.ErrNoDocuments if the
// user has no record for that week, or a wrapped error for anything else
func (s *Store) GetFlagRecord(userID string, week string) (FlagRecord, error) {
	opts := options.FindOne()

	var result FlagRecord
	err := s.Collections.FlagRecords.FindOne(context.TODO(), bson.M{"userid": userID, "week": week}, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return FlagRecord{}, err
		}
		return FlagRecord{}, fmt.Errorf("error fetching flag record from db: %w", err)
	}

	return result, nil
}

// UpsertFlagRecord writes a record back to the db. The write is a single
// ReplaceOne with upsert keyed on (userid, week), so concurrent submissions
// for the same user and week cannot create duplicate documents.
// Preconditions: Receives the FlagRecord to be stored
// Postconditions: Inserts or replaces the document and returns nil, or an error if it occurs
func (s *Store) UpsertFlagRecord(record FlagRecord) error {
	if record.UserId == "" || record.Week == "" {
		return fmt.Errorf("flag record is missing userid or week")
	}

	filter := bson.M{"userid": record.UserId, "week": record.Week}
	opts := options.Replace().SetUpsert(true)

	// _id is immutable; never carry one into a replacement document
	record.Id = primitive.ObjectID{}

	_, err := s.Collections.FlagRecords.ReplaceOne(context.TODO(), filter, record, opts)
	if err != nil {
		return fmt.Errorf("flag record upsert failed: %w", err)
	}
	return nil
}

// GetWeekRecords does a DB lookup and gets the records of all users for a single
// week. Used in weekly leaderboard and rank calculations.
// Preconditions: Receives string containing the week key
// Postconditions: Returns slice of FlagRecords, or an error if it occurs
func (s *Store) GetWeekRecords(week string) ([]FlagRecord, error) {
	filter := bson.D{{Key: "week", Value: week}}
	return s.findRecords(filter)
}

// GetWeeksRecords does a DB lookup and gets the records of all users across a
// set of weeks. Used in monthly aggregation.
// Preconditions: Receives string slice of week keys
// Postconditions: Returns slice of FlagRecords, or an error if it occurs
func (s *Store) GetWeeksRecords(weeks []string) ([]FlagRecord, error) {
	filter := bson.M{"week": bson.M{"$in": weeks}}
	return s.findRecords(filter)
}

// GetUserRecords does a DB lookup and gets every week's record for a single
// user. Used in all-time stats.
// Preconditions: Receives string containing the user ID
// Postconditions: Returns slice of FlagRecords sorted by week ascending, or an error if it occurs
func (s *Store) GetUserRecords(userID string) ([]FlagRecord, error) {
	filter := bson.D{{Key: "userid", Value: userID}}
	return s.findRecords(filter)
}

// GetAllRecords does a DB lookup and gets every record ever stored. Used in
// all-time leaderboard calculations, which is why the all-time leaderboard is
// slower than weekly.
// Postconditions: Returns slice of FlagRecords, or an error if it occurs
func (s *Store) GetAllRecords() ([]FlagRecord, error) {
	return s.findRecords(bson.D{})
}

// findRecords runs a filtered find sorted by week then points and unpacks the
// cursor into a slice
func (s *Store) findRecords(filter interface{}) ([]FlagRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "week", Value: 1}, {Key: "weeklypoints", Value: -1}})

	cursor, err := s.Collections.FlagRecords.Find(context.TODO(), filter, opts)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching flag records from db: %w", err)
	}

	var results []FlagRecord
	if err = cursor.All(context.TODO(), &results); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of flag records: %w", err)
	}

	return results, nil
}
