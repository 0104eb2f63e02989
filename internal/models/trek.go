package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrekServices describes what is included with a trek package.
type TrekServices struct {
	Meals        string `bson:"meals" json:"meals"`
	ReturnTiming string `bson:"returnTiming" json:"returnTiming"`
	GroupSize    string `bson:"groupSize" json:"groupSize"`
	Transport    string `bson:"transport" json:"transport"`
	PickupDrop   string `bson:"pickupDrop" json:"pickupDrop"`
}

type Price struct {
	Single  float64 `bson:"single" json:"single"`
	Package float64 `bson:"package" json:"package"`
}

// Trek is a bookable trek listing. ID is the app-assigned integer key used by
// the public API; the Mongo ObjectID is internal only.
//
// Field names in bson mirror the json names so that partial updates built
// from request bodies address the stored fields directly.
type Trek struct {
	MongoID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID                    int                `bson:"id" json:"id"`
	Name                  string             `bson:"name" json:"name" validate:"required"`
	Category              string             `bson:"category" json:"category" validate:"required"`
	Location              string             `bson:"location" json:"location" validate:"required"`
	DistanceFromBangalore string             `bson:"distanceFromBangalore" json:"distanceFromBangalore"`
	Duration              string             `bson:"duration" json:"duration" validate:"required"`
	Description           string             `bson:"description" json:"description" validate:"required"`
	BigDescription        string             `bson:"bigDescription,omitempty" json:"bigDescription,omitempty"`
	Images                []string           `bson:"images" json:"images"`
	Attractions           []string           `bson:"attractions" json:"attractions"`
	Services              TrekServices       `bson:"services" json:"services"`
	Price                 Price              `bson:"price" json:"price"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time          `bson:"updatedAt" json:"updatedAt"`
}
