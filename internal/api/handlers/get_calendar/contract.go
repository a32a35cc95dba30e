package get_calendar

import (
	"time"

	"github.com/m04kA/sommerhus-booking/internal/calendar"
)

type BookingService interface {
	Month(year int, month time.Month) []calendar.Day
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
