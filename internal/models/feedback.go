package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback represents anonymous product feedback
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	Feedback  string             `bson:"feedback" json:"feedback"`
	IPAddress string             `bson:"ip_address,omitempty" json:"-"`
}
