package handlers

import (
	"time"

	"github.com/m04kA/sommerhus-booking/internal/domain"
)

// BookingResponse HTTP представление бронирования
type BookingResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Guests               int     `json:"guests"`
	Comment              string  `json:"comment"`
	StartDate            string  `json:"startDate"`
	EndDate              string  `json:"endDate"`
	DisplayStart         string  `json:"displayStart"`
	DisplayEnd           string  `json:"displayEnd"`
	StayLength           int     `json:"stayLength"`
	Status               string  `json:"status"`
	FlightTicketUploaded bool    `json:"flightTicketUploaded"`
	FlightTicketImage    *string `json:"flightTicketImage,omitempty"`
	FlightTicketDeadline string  `json:"flightTicketDeadline"`
	TicketOverdue        bool    `json:"ticketOverdue"`
	CreatedAt            string  `json:"createdAt"`
}

// FromDomainBooking конвертирует бронирование в HTTP модель
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	return &BookingResponse{
		ID:                   b.ID,
		Name:                 b.Name,
		Guests:               b.Guests,
		Comment:              b.Comment,
		StartDate:            domain.FormatDate(b.StartDate),
		EndDate:              domain.FormatDate(b.EndDate),
		DisplayStart:         domain.FormatDisplayDate(b.StartDate),
		DisplayEnd:           domain.FormatDisplayDate(b.EndDate),
		StayLength:           b.StayLength(),
		Status:               string(b.Status),
		FlightTicketUploaded: b.FlightTicketUploaded,
		FlightTicketImage:    b.FlightTicketImage,
		FlightTicketDeadline: b.FlightTicketDeadline.Format(time.RFC3339),
		TicketOverdue:        b.IsTicketOverdue(now),
		CreatedAt:            b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookings конвертирует список бронирований
func FromDomainBookings(list []*domain.Booking, now time.Time) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromDomainBooking(b, now))
	}
	return out
}
