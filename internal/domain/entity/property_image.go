package entity

// PropertyImage links an uploaded image file to a property. Images are never
// hard-deleted; disabling sets Enabled to false. The first enabled image per
// property serves as its listing thumbnail.
type PropertyImage struct {
	ID         string `json:"id"`
	IDProperty string `json:"idProperty"`
	File       string `json:"file"`
	Enabled    bool   `json:"enabled"`
}
