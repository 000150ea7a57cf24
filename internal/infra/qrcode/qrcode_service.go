package qrcode

import (
	"net/url"
	"path"
	"strings"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize      = 256
	storePathSegment = "stores"
)

type qrcodeService struct {
	baseURL              *url.URL
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service encoding store ordering links
// of the form {baseURL}/stores/{id}.
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) (service.QRCodeService, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid QR code base URL")
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("QR code base URL must be absolute: %q", baseURL)
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              parsed,
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}, nil
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
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

// StoreLink returns the ordering deep link for a store.
func (s *qrcodeService) StoreLink(storeID uuid.UUID) string {
	return s.baseURL.JoinPath(storePathSegment, storeID.String()).String()
}

// GenerateStoreQR renders the store's ordering link as a PNG.
func (s *qrcodeService) GenerateStoreQR(storeID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.StoreLink(storeID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseStoreQR extracts the store ID from a scanned ordering link. Links to
// other hosts are rejected.
func (s *qrcodeService) ParseStoreQR(qrData string) (uuid.UUID, error) {
	link, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code link")
	}

	if !strings.EqualFold(link.Host, s.baseURL.Host) {
		return uuid.Nil, errors.Errorf("QR code points to another host: %s", link.Host)
	}

	dir, id := path.Split(strings.TrimRight(link.Path, "/"))
	if path.Base(dir) != storePathSegment {
		return uuid.Nil, errors.Errorf("QR code is not a store link: %s", link.Path)
	}

	storeID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse store ID")
	}

	return storeID, nil
}
