// Package service defines interfaces for external collaborators consumed by
// the usecases.
package service

import "context"

// AttendeeRecord is the payload persisted by the attendee endpoint.
type AttendeeRecord struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Class          string `json:"class"`
	Occupation     string `json:"occupation"`
	Workplace      string `json:"workplace"`
	Address        string `json:"address"`
	Country        string `json:"country"`
	Message        string `json:"message"`
	DonationAmount int64  `json:"donationAmount"`
	TicketQRURL    string `json:"ticketQrUrl"`
}

// OrderItem carries only the merchandise reference and quantity; unit prices
// are not re-sent, the backend keeps its own price of record.
type OrderItem struct {
	MerchandiseID int64 `json:"merchandiseId"`
	Quantity      int   `json:"quantity"`
}

// OrderRecord is the payload persisted by the order endpoint. Amount is the
// client-computed total.
type OrderRecord struct {
	AttendeeID int64       `json:"attendeeId"`
	Items      []OrderItem `json:"items"`
	Amount     int64       `json:"amount"`
}

// PaymentProofUpload carries the proof file plus the identifiers of the
// records it settles. Amount is the client-computed grand total
// (merchandise + donation).
type PaymentProofUpload struct {
	Data        []byte
	FileName    string
	ContentType string
	AttendeeID  int64
	OrderID     *int64
	DonationID  *int64
	Amount      int64
}

// RegistrationGateway is the HTTP+JSON contract of the upstream registration
// backend. Each call is a single suspension point; the orchestrator never
// parallelizes them.
type RegistrationGateway interface {
	// CheckDuplicate reports whether an attendee with the email or phone
	// already exists. Backend failures are reported as "not exists"; the
	// check only guards the form step UX.
	CheckDuplicate(ctx context.Context, email, phone string) (bool, error)

	// CreateAttendee persists the registration form and returns the new
	// attendee ID.
	CreateAttendee(ctx context.Context, record AttendeeRecord) (int64, error)

	// CreateDonation persists a donation amount for an attendee and returns
	// the donation ID.
	CreateDonation(ctx context.Context, attendeeID, amount int64) (int64, error)

	// CreateOrder persists the merchandise order and returns the order ID.
	CreateOrder(ctx context.Context, record OrderRecord) (int64, error)

	// UploadPaymentProof uploads the proof image and returns its URL.
	UploadPaymentProof(ctx context.Context, upload PaymentProofUpload) (string, error)

	// UploadTicketQR uploads the rendered QR PNG for an email and returns
	// its URL.
	UploadTicketQR(ctx context.Context, png []byte, email string) (string, error)
}
