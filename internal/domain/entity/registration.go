package entity

// RegistrationForm holds the attendee-facing fields collected across the
// flow steps. AttendeeID is assigned only after the attendee record has been
// persisted upstream.
type RegistrationForm struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Class          string `json:"class"`
	Occupation     string `json:"occupation"`
	Workplace      string `json:"workplace"`
	Address        string `json:"address"`
	Country        string `json:"country"`
	Message        string `json:"message"`
	DonationAmount int64  `json:"donationAmount"` // VND, defaults to 0
	AttendeeID     *int64 `json:"attendeeId,omitempty"`
}
