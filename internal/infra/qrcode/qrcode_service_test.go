package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GeneratesPNG(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://app.example.com")

	png, err := svc.GenerateJoinCodeQR("AB2CD3EF")

	require.NoError(t, err)
	require.NotEmpty(t, png)
	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X", "")

	png, err := svc.GenerateJoinCodeQR("AB2CD3EF")

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
