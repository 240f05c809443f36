package entity

import (
	"strings"
	"time"

	domainerrors "reunion/internal/domain/errors"
)

// MaxPaymentProofSize is the largest payment proof accepted before any
// upload is attempted.
const MaxPaymentProofSize = 5 << 20 // 5 MiB

// PaymentProofArtifact is the screenshot of the bank transfer held in the
// session until checkout. At most one is held at a time; selecting a new
// file replaces the previous one.
type PaymentProofArtifact struct {
	Data        []byte    `json:"data"`
	FileName    string    `json:"fileName"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType"`
	CapturedAt  time.Time `json:"capturedAt"`
}

// NewPaymentProofArtifact validates the file locally and rejects wrong types
// and oversized files without any network call.
func NewPaymentProofArtifact(data []byte, fileName, contentType string, capturedAt time.Time) (*PaymentProofArtifact, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domainerrors.ErrProofNotImage
	}
	if int64(len(data)) > MaxPaymentProofSize {
		return nil, domainerrors.ErrProofTooLarge
	}

	return &PaymentProofArtifact{
		Data:        data,
		FileName:    fileName,
		Size:        int64(len(data)),
		ContentType: contentType,
		CapturedAt:  capturedAt,
	}, nil
}
