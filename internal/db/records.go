package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pulsenet-backend/pkg"
)

const (
	collectionName = "diagnosis_history"

	// listLimit caps the history query. The endpoint never pages.
	listLimit = 50
)

// Connect opens a Mongo client, verifies the connection with a ping and
// returns the named database handle. The caller owns the client lifecycle
// through the returned database.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client.Database(dbName), nil
}

// Store persists and queries diagnosis records. Appends are independent
// single-document inserts, so concurrent requests need no coordination
// beyond the driver's own connection pooling.
type Store struct {
	records *mongo.Collection
}

// NewStore constructs a Store over the diagnosis history collection.
func NewStore(database *mongo.Database) *Store {
	return &Store{records: database.Collection(collectionName)}
}

// EnsureIndexes creates the compound index backing the doctor history
// query. It runs once at startup, the same place schema migrations would.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.records.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "doctorEmail", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}

// Append inserts one record. The document is never updated or deleted
// afterwards.
func (s *Store) Append(ctx context.Context, record *pkg.PatientRecord) error {
	_, err := s.records.InsertOne(ctx, record)
	return err
}

// ListByDoctor returns records for the given doctor email, newest first,
// capped at listLimit. An empty email returns records for all doctors.
func (s *Store) ListByDoctor(ctx context.Context, email string) ([]pkg.PatientRecord, error) {
	filter := bson.M{}
	if email != "" {
		filter = bson.M{"doctorEmail": email}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(listLimit)
	cursor, err := s.records.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	records := make([]pkg.PatientRecord, 0, listLimit)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
