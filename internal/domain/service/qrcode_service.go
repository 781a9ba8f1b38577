package service

// QRCodeService renders shareable payloads as QR code images.
type QRCodeService interface {
	// GenerateJoinCodeQR renders a company join code as a PNG image.
	GenerateJoinCodeQR(joinCode string) ([]byte, error)
}
