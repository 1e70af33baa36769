package entity

import "time"

// PropertyTrace is an append-only sales-history record for a property.
type PropertyTrace struct {
	ID         string    `json:"id"`
	IDProperty string    `json:"idProperty"`
	DateSale   time.Time `json:"dateSale"`
	Name       string    `json:"name"`
	Value      float64   `json:"value"`
	Tax        float64   `json:"tax"`
}
