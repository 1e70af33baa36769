package entity

import "time"

// Owner represents a property owner profile. When a user registers with the
// Owner role, an Owner is provisioned sharing the user's ID.
type Owner struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Photo    string    `json:"photo,omitempty"`
	Birthday time.Time `json:"birthday"`
}
