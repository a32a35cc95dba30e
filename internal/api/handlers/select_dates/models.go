package select_dates

import (
	"time"

	"github.com/m04kA/sommerhus-booking/internal/api/handlers"
	"github.com/m04kA/sommerhus-booking/internal/domain"
	"github.com/m04kA/sommerhus-booking/internal/selection"
)

// ClickRequest HTTP request model
type ClickRequest struct {
	Date string `json:"date"` // "2025-07-10"
}

// SelectionResponse HTTP response model
type SelectionResponse struct {
	State        string                    `json:"state"`
	StartDate    string                    `json:"startDate,omitempty"`
	EndDate      string                    `json:"endDate,omitempty"`
	DisplayStart string                    `json:"displayStart,omitempty"`
	DisplayEnd   string                    `json:"displayEnd,omitempty"`
	StayLength   int                       `json:"stayLength"`
	OpenForm     bool                      `json:"openForm"`
	Viewing      *handlers.BookingResponse `json:"viewing,omitempty"`
}

// FromResult конвертирует состояние выбора в HTTP модель
func FromResult(r selection.Result, now time.Time) *SelectionResponse {
	resp := &SelectionResponse{
		State:      string(r.State),
		StayLength: domain.CalculateStayLength(r.Start, r.End),
		OpenForm:   r.OpenForm,
	}
	if r.Start != nil {
		resp.StartDate = domain.FormatDate(*r.Start)
		resp.DisplayStart = domain.FormatDisplayDate(*r.Start)
	}
	if r.End != nil {
		resp.EndDate = domain.FormatDate(*r.End)
		resp.DisplayEnd = domain.FormatDisplayDate(*r.End)
	}
	if r.Viewing != nil {
		resp.Viewing = handlers.FromDomainBooking(r.Viewing, now)
	}
	return resp
}
