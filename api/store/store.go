/* store.go
 * Contains the store struct and NewStore function. The methods for interacting
 * with the flag_records collection live in records.go
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		FlagRecords *mongo.Collection
	}
}

// NewStore initialises the db connection and collection handles
// Preconditions: Receives strings containing the database name and mongo URI
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	return &Store{
		Client:   client,
		Database: db,
		Collections: struct {
			FlagRecords *mongo.Collection
		}{
			FlagRecords: db.Collection("flag_records"),
		},
	}, nil
}
