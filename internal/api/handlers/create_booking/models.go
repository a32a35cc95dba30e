package create_booking

import (
	"github.com/m04kA/sommerhus-booking/internal/api/handlers"
	"github.com/m04kA/sommerhus-booking/internal/domain"
	"github.com/m04kA/sommerhus-booking/internal/service/bookings/models"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name      string `json:"name"`
	Guests    int    `json:"guests"`
	Comment   string `json:"comment"`
	StartDate string `json:"startDate"` // "2025-07-01"
	EndDate   string `json:"endDate"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking          *handlers.BookingResponse `json:"booking"`
	StayLength       int                       `json:"stayLength"`
	RequiresApproval bool                      `json:"requiresApproval"`
	Persisted        bool                      `json:"persisted"`
	Notified         bool                      `json:"notified"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBookingRequest) ToServiceRequest() (*models.ProposeRequest, error) {
	start, err := domain.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.ProposeRequest{
		Start:   start,
		End:     end,
		Name:    r.Name,
		Guests:  r.Guests,
		Comment: r.Comment,
	}, nil
}
