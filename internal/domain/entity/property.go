// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Property is the central entity of the portal: a listing published by an
// owner. IDs are store-generated ObjectID hex strings and treated as opaque.
type Property struct {
	ID           string  `json:"id"`
	IDOwner      string  `json:"idOwner"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	CodeInternal string  `json:"codeInternal"`
	Year         int     `json:"year"`
	Description  string  `json:"description"`
}
