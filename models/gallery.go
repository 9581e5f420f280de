package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gallery categories accepted on upload.
const (
	CategoryInterior   = "interior"
	CategoryExterior   = "exterior"
	CategoryCommercial = "commercial"
)

// GalleryItem model
type GalleryItem struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Category  string             `json:"category" bson:"category"`
	Image     string             `json:"image" bson:"image"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IsValidCategory reports whether category is one of the accepted values.
func IsValidCategory(category string) bool {
	switch category {
	case CategoryInterior, CategoryExterior, CategoryCommercial:
		return true
	}
	return false
}
