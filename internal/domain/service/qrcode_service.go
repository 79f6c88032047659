package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateProfileQR renders the public profile URL for a slug as a PNG QR code.
	GenerateProfileQR(slug string) ([]byte, error)
}
