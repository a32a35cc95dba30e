package get_booking

import (
	"time"

	"github.com/m04kA/sommerhus-booking/internal/domain"
)

type BookingService interface {
	Get(id string) (*domain.Booking, error)
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
