package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryImage references an image stored in the object store. ObjectKey is
// the key inside the bucket; deleting the record also deletes the object.
// The bson name matches the json name so partial updates address it directly.
type GalleryImage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl" validate:"required"`
	ObjectKey   string             `bson:"storageId" json:"storageId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
