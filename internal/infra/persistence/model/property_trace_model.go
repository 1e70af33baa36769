package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyTraceModel mirrors the 'property_traces' collection.
type PropertyTraceModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	IDProperty string             `bson:"idProperty"`
	DateSale   time.Time          `bson:"dateSale"`
	Name       string             `bson:"name"`
	Value      float64            `bson:"value"`
	Tax        float64            `bson:"tax"`
}

// CollectionName returns the collection this model maps to.
func (PropertyTraceModel) CollectionName() string {
	return "property_traces"
}
