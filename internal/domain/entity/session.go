package entity

import "github.com/google/uuid"

// FirstStep is the step a fresh session starts on.
const FirstStep = 1

// TicketQR is the one-time check-in artifact cached for the lifetime of the
// session. Token is a stable digest of the email the image was generated
// for; a matching token with a non-empty URL means the upload can be skipped
// on retry.
type TicketQR struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// CheckoutSession is the single source of truth for one attendee's progress
// through the flow: form data, cart, pending payment proof and the cached
// ticket QR reference.
type CheckoutSession struct {
	Key          uuid.UUID             `json:"key"`
	Step         int                   `json:"step"`
	Form         RegistrationForm      `json:"form"`
	Cart         Cart                  `json:"cart"`
	PaymentProof *PaymentProofArtifact `json:"paymentProof,omitempty"`
	TicketQR     *TicketQR             `json:"ticketQr,omitempty"`
}

// NewCheckoutSession returns a session holding the documented initial
// defaults: step 1, donation amount 0, empty cart, no artifacts.
func NewCheckoutSession(key uuid.UUID) *CheckoutSession {
	return &CheckoutSession{
		Key:  key,
		Step: FirstStep,
		Cart: Cart{},
	}
}
