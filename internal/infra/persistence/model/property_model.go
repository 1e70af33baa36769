// Package model holds the persistence-layer document types. They carry bson
// tags and ObjectID keys; the domain never sees them.
package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyModel mirrors the 'properties' collection.
type PropertyModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	IDOwner      string             `bson:"idOwner"`
	Name         string             `bson:"name"`
	Address      string             `bson:"address"`
	Price        float64            `bson:"price"`
	CodeInternal string             `bson:"codeInternal"`
	Year         int                `bson:"year"`
	Description  string             `bson:"description,omitempty"`
}

// CollectionName returns the collection this model maps to.
func (PropertyModel) CollectionName() string {
	return "properties"
}
