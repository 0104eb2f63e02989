package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sequence allocates monotonically increasing integer ids for one resource
// via an atomic $inc on the counters collection. Unlike a read-then-write
// "max id + 1", two concurrent allocations can never observe the same value.
type Sequence struct {
	counters *mongo.Collection
	name     string
}

func NewSequence(counters *mongo.Collection, name string) *Sequence {
	return &Sequence{counters: counters, name: name}
}

// Seed raises the counter to at least the highest id already present in
// target, so sequences keep the max+1 behavior over pre-existing data.
func (s *Sequence) Seed(ctx context.Context, target *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	var last struct {
		ID int `bson:"id"`
	}
	err := target.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil
		}
		return err
	}

	_, err = s.counters.UpdateOne(ctx,
		bson.M{"_id": s.name},
		bson.M{"$max": bson.M{"seq": last.ID}},
		options.Update().SetUpsert(true),
	)
	return err
}

// Next returns the next id in the sequence.
func (s *Sequence) Next(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": s.name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}
