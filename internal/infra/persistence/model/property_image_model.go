package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyImageModel mirrors the 'property_images' collection. Insertion
// order is the _id order, which is what the thumbnail query sorts by.
type PropertyImageModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	IDProperty string             `bson:"idProperty"`
	File       string             `bson:"file"`
	Enabled    bool               `bson:"enabled"`
}

// CollectionName returns the collection this model maps to.
func (PropertyImageModel) CollectionName() string {
	return "property_images"
}
