package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wheeltrip/assist-api/internal/core/domain"
)

const collectionTrips = "trips"

// TripRepository stores trip documents with their embedded steps.
type TripRepository struct {
	col *mongo.Collection
}

func NewTripRepository(db *mongo.Database) *TripRepository {
	return &TripRepository{col: db.Collection(collectionTrips)}
}

// Create inserts a new trip document.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, trip)
	if err != nil {
		return err
	}
	return nil
}

// FindByID retrieves a trip by its identifier.
func (r *TripRepository) FindByID(ctx context.Context, id string) (*domain.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Trip
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTripNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListByClient returns the client's trips, newest first.
func (r *TripRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"client_id": clientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trips []*domain.Trip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// UpdateStatus atomically sets the trip's status and refreshes updated_at.
func (r *TripRepository) UpdateStatus(ctx context.Context, id string, status domain.TripStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}

// Delete removes a trip document.
func (r *TripRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrTripNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the trips collection.
func (r *TripRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
