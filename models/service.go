package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a bookable treatment with its configured time slots.
// Services are seeded outside this API and only ever read.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitzero"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
	Price float64            `bson:"price,omitempty" json:"price,omitempty"`
}

// ServiceSummary is a service projected to its name.
type ServiceSummary struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitzero"`
	Name string             `bson:"name" json:"name"`
}
