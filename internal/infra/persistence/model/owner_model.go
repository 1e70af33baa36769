package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OwnerModel mirrors the 'owners' collection. The _id of an owner provisioned
// at registration equals the _id of its user document.
type OwnerModel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Address  string             `bson:"address"`
	Photo    string             `bson:"photo,omitempty"`
	Birthday time.Time          `bson:"birthday"`
}

// CollectionName returns the collection this model maps to.
func (OwnerModel) CollectionName() string {
	return "owners"
}
