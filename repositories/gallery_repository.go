package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brightcoat/paintsite_backend/config"
	"github.com/brightcoat/paintsite_backend/models"
)

type GalleryRepository struct {
	collection *mongo.Collection
}

func NewGalleryRepository(db *mongo.Client) *GalleryRepository {
	return &GalleryRepository{
		collection: config.GetCollection(db, "gallery"),
	}
}

// Create persists a new gallery item, assigning its id and timestamps.
func (r *GalleryRepository) Create(ctx context.Context, item *models.GalleryItem) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	item.ID = primitive.NewObjectID()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, item)
	return err
}

// List returns all gallery items, newest first.
func (r *GalleryRepository) List(ctx context.Context) ([]models.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.GalleryItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a gallery item by id and returns the removed record so the
// caller can unlink its backing file. ErrNotFound for unknown ids.
func (r *GalleryRepository) Delete(ctx context.Context, id string) (*models.GalleryItem, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var item models.GalleryItem
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}
