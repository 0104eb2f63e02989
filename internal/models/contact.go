package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ContactPending   = "pending"
	ContactContacted = "contacted"
	ContactResolved  = "resolved"
)

// Contact is an inbound lead from the storefront contact form.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Phone     string             `bson:"phone" json:"phone" validate:"required"`
	Date      string             `bson:"date,omitempty" json:"date,omitempty"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type ContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending contacted resolved"`
}
