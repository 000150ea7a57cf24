package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, size int, level string) *qrcodeService {
	t.Helper()

	svc, err := NewQRCodeService("https://shop.example.com/", size, level)
	require.NoError(t, err)

	return svc.(*qrcodeService)
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "h"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, newTestService(t, 256, tt.errorCorrectionLevel))
		})
	}

	t.Run("relative base URL is rejected", func(t *testing.T) {
		_, err := NewQRCodeService("/stores", 256, "M")
		assert.Error(t, err)
	})

	t.Run("default size", func(t *testing.T) {
		assert.Equal(t, defaultSize, newTestService(t, 0, "M").size)
	})
}

func TestQRCodeService_StoreLink(t *testing.T) {
	svc := newTestService(t, 256, "M")
	storeID := uuid.MustParse("0190b8a4-8f2e-7c3a-9d41-2b6f0e5a1c77")

	assert.Equal(t, "https://shop.example.com/stores/0190b8a4-8f2e-7c3a-9d41-2b6f0e5a1c77", svc.StoreLink(storeID))
}

func TestQRCodeService_GenerateStoreQR(t *testing.T) {
	svc := newTestService(t, 256, "M")

	qrBytes, err := svc.GenerateStoreQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateStoreQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		qrBytes, err := newTestService(t, size, "M").GenerateStoreQR(uuid.New())
		require.NoError(t, err)

		img, err := png.DecodeConfig(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Width)
	}
}

func TestQRCodeService_ParseStoreQR(t *testing.T) {
	svc := newTestService(t, 256, "M")
	storeID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		parsed, err := svc.ParseStoreQR(svc.StoreLink(storeID))
		require.NoError(t, err)
		assert.Equal(t, storeID, parsed)
	})

	tests := []struct {
		name string
		data string
	}{
		{"other host", "https://evil.example.com/stores/" + storeID.String()},
		{"not a store link", "https://shop.example.com/menus/" + storeID.String()},
		{"bad uuid", "https://shop.example.com/stores/not-a-uuid"},
		{"garbage", "%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseStoreQR(tt.data)
			assert.Error(t, err)
		})
	}
}
