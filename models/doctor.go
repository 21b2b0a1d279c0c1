package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitzero"`
	Email     string             `bson:"email" json:"email" binding:"required"`
	Name      string             `bson:"name" json:"name" binding:"required"`
	Specialty string             `bson:"specialty" json:"specialty"`
	Img       string             `bson:"img,omitempty" json:"img,omitempty"`
}
