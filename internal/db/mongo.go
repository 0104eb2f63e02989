package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the app.
const (
	ColUsers    = "users"
	ColTreks    = "treks"
	ColOutings  = "outings"
	ColContacts = "contacts"
	ColGallery  = "gallery"
	ColCounters = "counters"
)

type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect opens the MongoDB connection and verifies it with a ping.
func Connect(uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &Mongo{Client: client, DB: client.Database(dbName)}, nil
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.DB.Collection(name)
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, nil)
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// EnsureIndexes creates the unique indexes the app relies on: one account and
// one inquiry per email, and uniqueness of the app-assigned integer ids.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	emailIdx := mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}
	idIdx := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique}

	for col, idx := range map[string]mongo.IndexModel{
		ColUsers:    emailIdx,
		ColContacts: emailIdx,
		ColTreks:    idIdx,
		ColOutings:  idIdx,
	} {
		if _, err := m.DB.Collection(col).Indexes().CreateOne(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}
