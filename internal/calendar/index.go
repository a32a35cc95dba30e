// Package calendar answers occupancy questions against a booking set.
package calendar

import (
	"time"

	"github.com/m04kA/sommerhus-booking/internal/domain"
)

// DayState describes how a calendar day is occupied
type DayState string

const (
	DayFree           DayState = "free"
	DayPending        DayState = "pending"
	DayAwaitingTicket DayState = "awaiting_ticket" // confirmed, no flight ticket yet
	DayComplete       DayState = "complete"
)

// Day is one cell of a month view
type Day struct {
	Date      time.Time
	State     DayState
	BookingID string
}

// Index is a read-only view over a booking set.
// It never mutates the bookings it was built from.
type Index struct {
	bookings []*domain.Booking
}

// NewIndex creates an index over the given bookings
func NewIndex(bookings []*domain.Booking) *Index {
	return &Index{bookings: bookings}
}

// Occupant returns the booking that covers the date.
// If several bookings cover it, the first one in set order wins.
func (i *Index) Occupant(date time.Time) (*domain.Booking, bool) {
	for _, b := range i.bookings {
		if b.Covers(date) {
			return b, true
		}
	}
	return nil, false
}

// IsOccupied reports whether any booking covers the date
func (i *Index) IsOccupied(date time.Time) bool {
	_, ok := i.Occupant(date)
	return ok
}

// Conflicts returns the bookings whose ranges overlap the given range
func (i *Index) Conflicts(r domain.DateRange) []*domain.Booking {
	var conflicts []*domain.Booking
	for _, b := range i.bookings {
		if b.Range().Overlaps(r) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

// Month returns one Day per calendar day of the month
func (i *Index) Month(year int, month time.Month) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]Day, 0, daysInMonth)
	for d := 0; d < daysInMonth; d++ {
		date := first.AddDate(0, 0, d)
		day := Day{Date: date, State: DayFree}

		if b, ok := i.Occupant(date); ok {
			day.BookingID = b.ID
			day.State = stateOf(b)
		}
		days = append(days, day)
	}
	return days
}

func stateOf(b *domain.Booking) DayState {
	switch {
	case b.IsPending():
		return DayPending
	case !b.FlightTicketUploaded:
		return DayAwaitingTicket
	default:
		return DayComplete
	}
}
