/* test_helpers.go
 * Contains test helper functions and sample data builders for store package tests
 */

package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	store, err := NewStore("test_flagbot", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if store.Client != nil {
			// Drop test database
			store.Database.Drop(context.TODO())
			// Disconnect client
			store.Client.Disconnect(context.TODO())
		}
	}

	return store, cleanup, nil
}

// CreateTestClient creates a test MongoDB client.
func CreateTestClient(mongoURI string) (*mongo.Client, error) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	return client, nil
}

// CreateSampleRecord builds a FlagRecord for testing.
func CreateSampleRecord(userID, nickname, week string, points int, placements []int) FlagRecord {
	return FlagRecord{
		UserId:       userID,
		Nickname:     nickname,
		Timestamp:    1700000000000,
		WeeklyPoints: points,
		Placements:   placements,
		Week:         week,
	}
}
