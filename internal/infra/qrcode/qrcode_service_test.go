package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTicketQR_ProducesPNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateTicketQR("attendee@example.com")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "expected PNG magic bytes")
}

func TestGenerateTicketQR_NormalizesEmail(t *testing.T) {
	svc := NewQRCodeService(256, "H")

	upper, err := svc.GenerateTicketQR("  Attendee@Example.COM ")
	require.NoError(t, err)

	lower, err := svc.GenerateTicketQR("attendee@example.com")
	require.NoError(t, err)

	assert.Equal(t, lower, upper, "same email should render the same image regardless of casing")
}

func TestNewQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GenerateTicketQR("attendee@example.com")

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
