package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
)

// IsValid reports whether the status is one of the known statuses
func (s BookingStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Booking represents a stay in the house.
// StartDate and EndDate are calendar dates normalized to midnight UTC.
type Booking struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Guests  int    `json:"guests"`
	Comment string `json:"comment"`

	StartDate time.Time     `json:"startDate"`
	EndDate   time.Time     `json:"endDate"`
	Status    BookingStatus `json:"status"`

	FlightTicketUploaded bool      `json:"flightTicketUploaded"`
	FlightTicketImage    *string   `json:"flightTicketImage,omitempty"` // opaque reference, set iff uploaded
	FlightTicketDeadline time.Time `json:"flightTicketDeadline"`

	CreatedAt time.Time `json:"createdAt"`
}

// Range returns the booked date range
func (b *Booking) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

// StayLength returns the inclusive number of booked days
func (b *Booking) StayLength() int {
	return CalculateStayLength(&b.StartDate, &b.EndDate)
}

// IsPending returns true if the booking awaits owner approval
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsConfirmed returns true if the booking has been confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// Covers returns true if the given calendar date falls inside the booking (both ends inclusive)
func (b *Booking) Covers(date time.Time) bool {
	return b.Range().Contains(date)
}

// IsTicketOverdue reports whether the ticket deadline has passed without an upload.
// Display only, nothing is blocked by it.
func (b *Booking) IsTicketOverdue(now time.Time) bool {
	return !b.FlightTicketUploaded && now.After(b.FlightTicketDeadline)
}

// Clone returns a deep copy of the booking
func (b *Booking) Clone() *Booking {
	c := *b
	if b.FlightTicketImage != nil {
		img := *b.FlightTicketImage
		c.FlightTicketImage = &img
	}
	return &c
}

// RequiresApproval returns true if a stay of the given length must be approved by the owner
func RequiresApproval(stayLength int) bool {
	return stayLength > ApprovalThresholdDays
}
