package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brightcoat/paintsite_backend/config"
	"github.com/brightcoat/paintsite_backend/models"
)

// ErrNotFound is returned when an operation references an id that does not
// exist. Callers distinguish it from infrastructure failures.
var ErrNotFound = errors.New("record not found")

type BookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Client) *BookingRepository {
	return &BookingRepository{
		collection: config.GetCollection(db, "bookings"),
	}
}

// Create persists a new booking, assigning its id and creation timestamp.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, booking)
	return err
}

// List returns all bookings, newest first.
func (r *BookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Delete removes a booking by id. A nonexistent or malformed id yields
// ErrNotFound rather than a silent no-op.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
