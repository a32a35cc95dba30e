package get_calendar

import (
	"github.com/m04kA/sommerhus-booking/internal/calendar"
	"github.com/m04kA/sommerhus-booking/internal/domain"
)

// DayResponse один день месяца
type DayResponse struct {
	Date      string `json:"date"`
	Display   string `json:"display"`
	State     string `json:"state"`
	BookingID string `json:"bookingId,omitempty"`
}

// MonthResponse HTTP response model
type MonthResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Days  []*DayResponse `json:"days"`
}

// FromCalendarDays конвертирует дни календаря в HTTP модель
func FromCalendarDays(year, month int, days []calendar.Day) *MonthResponse {
	resp := &MonthResponse{
		Year:  year,
		Month: month,
		Days:  make([]*DayResponse, 0, len(days)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, &DayResponse{
			Date:      domain.FormatDate(d.Date),
			Display:   domain.FormatDisplayDate(d.Date),
			State:     string(d.State),
			BookingID: d.BookingID,
		})
	}
	return resp
}
