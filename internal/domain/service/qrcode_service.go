package service

// QRCodeService defines the interface for generating listing share QR codes.
type QRCodeService interface {
	// GenerateListingQR renders the public listing URL of a property as a PNG
	// QR code.
	GenerateListingQR(propertyID string) ([]byte, error)
}
