package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for store QR code generation and parsing
type QRCodeService interface {
	// GenerateStoreQR renders a PNG QR code pointing at the store's ordering page
	GenerateStoreQR(storeID uuid.UUID) ([]byte, error)

	// ParseStoreQR extracts the store ID from a scanned QR payload
	ParseStoreQR(qrData string) (uuid.UUID, error)
}
