package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking model
type Booking struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FullName    string             `json:"fullName" bson:"fullName"`
	Phone       string             `json:"phone" bson:"phone"`
	Location    string             `json:"location" bson:"location"`
	ServiceType string             `json:"serviceType" bson:"serviceType"`
	Message     string             `json:"message,omitempty" bson:"message,omitempty"`
	// Image is the relative URL of the uploaded attachment. Bookings without
	// an attachment keep it null.
	Image     *string   `json:"image" bson:"image"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// BookingRequest model for the public submission form
type BookingRequest struct {
	FullName    string `json:"fullName" form:"fullName" validate:"required"`
	Phone       string `json:"phone" form:"phone" validate:"required"`
	Location    string `json:"location" form:"location" validate:"required"`
	ServiceType string `json:"serviceType" form:"serviceType" validate:"required"`
	Message     string `json:"message" form:"message"`
}
