package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel mirrors the 'users' collection. Email carries a unique index
// created at startup.
type UserModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
	FullName     string             `bson:"fullName"`
	Photo        string             `bson:"photo,omitempty"`
	Role         string             `bson:"role"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// CollectionName returns the collection this model maps to.
func (UserModel) CollectionName() string {
	return "users"
}
