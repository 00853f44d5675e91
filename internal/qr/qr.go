// Package qr renders the principal's QR badge artifact. The code payload is
// the principal id; scanning it at a stall is how leads get captured.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/expofair/exhibitor-portal/internal/core/ports"
)

const imageSize = 512

// Generate renders a PNG QR code for the given principal id, packaged as an
// uploadable file part.
func Generate(principalID string) (ports.FileUpload, error) {
	if principalID == "" {
		return ports.FileUpload{}, fmt.Errorf("qr: empty principal id")
	}

	png, err := qrcode.Encode(principalID, qrcode.Medium, imageSize)
	if err != nil {
		return ports.FileUpload{}, fmt.Errorf("qr: encode: %w", err)
	}

	return ports.FileUpload{
		Field:    "qrCode",
		Filename: fmt.Sprintf("qr-%s.png", principalID),
		Content:  png,
	}, nil
}
