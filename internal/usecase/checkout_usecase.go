package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CheckoutResult is the single terminal outcome of a checkout run. A run
// that reaches the order stage successfully reports success even when the
// payment proof upload afterwards fails; ProofUploaded records that detail.
type CheckoutResult struct {
	AttendeeID    int64  `json:"attendeeId"`
	OrderID       *int64 `json:"orderId,omitempty"`
	DonationID    *int64 `json:"donationId,omitempty"`
	TicketQRURL   string `json:"ticketQrUrl"`
	ProofUploaded bool   `json:"proofUploaded"`
}

// CheckoutUsecase drives the final multi-stage save of a session.
type CheckoutUsecase interface {
	// Submit persists the whole session upstream: ticket QR, attendee,
	// optional donation, optional order, optional payment proof, in that
	// order. On success the session is cleared; on fatal failure it is left
	// intact for retry. A second Submit for the same key while one is in
	// flight is rejected.
	Submit(ctx context.Context, key uuid.UUID) (*CheckoutResult, error)

	// CheckDuplicate reports whether the email or phone is already
	// registered. It guards the form step UX only; Submit never consults it.
	CheckDuplicate(ctx context.Context, input *CheckDuplicateInput) (bool, error)
}

// CheckDuplicateInput defines the lookup for an existing registration.
type CheckDuplicateInput struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}
