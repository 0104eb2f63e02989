package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Resource is the one CRUD repository behind every integer-id entity
// (treks, outings). The create/list/get/update/delete shapes are identical
// across resources, so they live here once and are instantiated per type.
type Resource[T any] struct {
	coll *mongo.Collection
	seq  *Sequence
}

func NewResource[T any](coll *mongo.Collection, seq *Sequence) *Resource[T] {
	return &Resource[T]{coll: coll, seq: seq}
}

func (r *Resource[T]) NextID(ctx context.Context) (int, error) {
	return r.seq.Next(ctx)
}

func (r *Resource[T]) Insert(ctx context.Context, doc T) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

// All returns every document ordered by ascending id, i.e. creation order.
func (r *Resource[T]) All(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *Resource[T]) ByID(ctx context.Context, id int) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var doc T
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	return doc, err
}

// Set applies a $set of the given fields to the document with that id and
// reports whether a document matched.
func (r *Resource[T]) Set(ctx context.Context, id int, fields bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *Resource[T]) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}
