// Package qrcode renders listing share links as PNG QR codes.
package qrcode

import (
	"heyfarmer/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:  size,
		level: parseLevel(errorCorrectionLevel),
	}
}

func parseLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateLinkQR renders url as a square PNG.
func (s *qrcodeService) GenerateLinkQR(url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("qr code content is empty")
	}

	code, err := qrcode.New(url, s.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}
