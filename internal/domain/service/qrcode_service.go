package service

// QRCodeService defines the interface for ticket QR code generation.
type QRCodeService interface {
	// GenerateTicketQR renders the check-in QR image for an email as PNG bytes.
	GenerateTicketQR(email string) ([]byte, error)
}
