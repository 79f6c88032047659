package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://helatrade.lk")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://helatrade.lk")

	qrBytes, err := service.GenerateProfileQR("highland-tea")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateProfileQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "https://helatrade.lk")

			qrBytes, err := service.GenerateProfileQR("green-valley-farm")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateProfileQR_EmptySlug(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://helatrade.lk")

	_, err := service.GenerateProfileQR("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "slug must not be empty")
}

func TestQRCodeService_TrailingSlashBaseURL(t *testing.T) {
	// A trailing slash on the base URL must not produce a double slash.
	service := NewQRCodeService(256, "M", "https://helatrade.lk/")

	qrBytes, err := service.GenerateProfileQR("spice-corner")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
