/* store.go
 * Contains the store struct and NewStore function. The methods for this package are split
 * across match_records.go and head_to_head.go, one file per collection.
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
		MatchRecords *mongo.Collection
		HeadToHead   *mongo.Collection
	}
}

// NewStore initialises the store and the db connection.
// Preconditions: receives strings containing the database name and the mongo URI
// Postconditions: returns a pointer to the Store with both collections bound, or an
// error if the connection could not be established
func NewStore(dbName string, mongoURI string) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	s := &Store{
		Client:   client,
		Database: db,
	}
	s.Collections.MatchRecords = db.Collection("match_records")
	s.Collections.HeadToHead = db.Collection("head_to_head")
	return s, nil
}
