// Package trackingrepo stores the append-only parcel tracking log in MongoDB.
package trackingrepo

import (
	"context"
	"fmt"

	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/tracking"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoTrackingRepository struct {
	collection *mongo.Collection
}

// NewMongoTrackingRepository stores entries in the parcel_tracking collection of db.
func NewMongoTrackingRepository(db *mongo.Database) *MongoTrackingRepository {
	return &MongoTrackingRepository{collection: db.Collection(CollectionName)}
}

// EnsureIndexes creates the index ListByParcel reads through. It is idempotent.
func (r *MongoTrackingRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "parcel_id", Value: 1}, {Key: "created_at", Value: 1}},
		Options: options.Index().SetName("parcel_id_created_at"),
	})
	return err
}

// Append inserts e and returns the generated ObjectID as hex.
func (r *MongoTrackingRepository) Append(ctx context.Context, e tracking.Event) (string, error) {
	res, err := r.collection.InsertOne(ctx, fromDomain(e))
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

// ListByParcel returns the entries oldest first. Entries written in the same
// instant keep insertion order through the ObjectID tiebreaker.
func (r *MongoTrackingRepository) ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]tracking.Event, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"parcel_id": parcelID.String()},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var docs []EventDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	events := make([]tracking.Event, 0, len(docs))
	for _, d := range docs {
		e, convErr := d.toDomain()
		if convErr != nil {
			return nil, convErr
		}
		events = append(events, e)
	}
	return events, nil
}
