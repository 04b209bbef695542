package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection stores documents in a MongoDB collection. Documents are
// decoded through their bson tags; the driver's own _id is ignored and the
// "id" field is the lookup key.
type MongoCollection[T any] struct {
	coll *mongo.Collection
}

// NewMongoCollection wraps coll and makes sure a unique index exists on "id".
func NewMongoCollection[T any](ctx context.Context, coll *mongo.Collection) (*MongoCollection[T], error) {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create id index on %s: %w", coll.Name(), err)
	}
	return &MongoCollection[T]{coll: coll}, nil
}

func (m *MongoCollection[T]) InsertOne(ctx context.Context, doc T) error {
	if _, err := m.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (m *MongoCollection[T]) InsertMany(ctx context.Context, docs []T) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]interface{}, 0, len(docs))
	for _, d := range docs {
		batch = append(batch, d)
	}
	if _, err := m.coll.InsertMany(ctx, batch); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (m *MongoCollection[T]) FindOne(ctx context.Context, filter Filter) (T, error) {
	var out T
	err := m.coll.FindOne(ctx, bson.M(filter)).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return out, ErrNotFound
	}
	return out, err
}

// FindMany runs filter with an optional sort and limit (0 means none).
func (m *MongoCollection[T]) FindMany(ctx context.Context, filter Filter, sort *Sort, limit int) ([]T, error) {
	opts := options.Find()
	if sort != nil {
		dir := 1
		if sort.Desc {
			dir = -1
		}
		// _id breaks ties; the driver generates ObjectIDs in insertion order.
		opts.SetSort(bson.D{{Key: sort.Field, Value: dir}, {Key: "_id", Value: dir}})
	} else {
		opts.SetSort(bson.D{{Key: "_id", Value: 1}})
	}
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if filter == nil {
		filter = Filter{}
	}
	cur, err := m.coll.Find(ctx, bson.M(filter), opts)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOne applies $set; ErrNotFound when nothing matched.
func (m *MongoCollection[T]) UpdateOne(ctx context.Context, filter Filter, set Set) error {
	res, err := m.coll.UpdateOne(ctx, bson.M(filter), bson.M{"$set": bson.M(set)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoCollection[T]) DeleteOne(ctx context.Context, filter Filter) error {
	res, err := m.coll.DeleteOne(ctx, bson.M(filter))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoCollection[T]) Distinct(ctx context.Context, field string) ([]string, error) {
	vals, err := m.coll.Distinct(ctx, field, bson.D{})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v == nil {
			continue
		}
		out = append(out, fmt.Sprint(v))
	}
	return out, nil
}

func (m *MongoCollection[T]) CountAll(ctx context.Context) (int64, error) {
	return m.coll.CountDocuments(ctx, bson.D{})
}
