package list_bookings

import (
	"time"

	"github.com/m04kA/sommerhus-booking/internal/domain"
)

type BookingService interface {
	List() []*domain.Booking
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
