package service

// QRCodeService renders share links as QR code images.
type QRCodeService interface {
	// GenerateLinkQR renders url as a PNG QR code.
	GenerateLinkQR(url string) ([]byte, error)
}
