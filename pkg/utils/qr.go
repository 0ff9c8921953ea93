package utils

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// TicketQR encodes a ticket payload as a base64 PNG QR code for embedding
// in JSON responses.
func TicketQR(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
