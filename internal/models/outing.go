package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OutingContact is the organizer reachable for a given outing.
type OutingContact struct {
	Name  string `bson:"name" json:"name" validate:"required"`
	Email string `bson:"email" json:"email" validate:"required,email"`
	Phone string `bson:"phone" json:"phone" validate:"required"`
}

// Outing is a scheduled group outing. Structurally a Trek plus dates,
// inclusions and an organizer contact.
type Outing struct {
	MongoID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID                    int                `bson:"id" json:"id"`
	Name                  string             `bson:"name" json:"name" validate:"required"`
	Category              string             `bson:"category" json:"category" validate:"required"`
	Location              string             `bson:"location" json:"location" validate:"required"`
	DistanceFromBangalore string             `bson:"distanceFromBangalore" json:"distanceFromBangalore"`
	Duration              string             `bson:"duration" json:"duration" validate:"required"`
	Description           string             `bson:"description" json:"description" validate:"required"`
	BigDescription        string             `bson:"bigDescription,omitempty" json:"bigDescription,omitempty"`
	NextDate              time.Time          `bson:"nextDate" json:"nextDate"`
	AvailableDates        []time.Time        `bson:"availabledates" json:"availabledates"`
	Inclusions            []string           `bson:"inclusions" json:"inclusions"`
	Images                []string           `bson:"images" json:"images"`
	Attractions           []string           `bson:"attractions" json:"attractions"`
	Services              TrekServices       `bson:"services" json:"services"`
	Price                 Price              `bson:"price" json:"price"`
	Contact               OutingContact      `bson:"contact" json:"contact"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time          `bson:"updatedAt" json:"updatedAt"`
}
