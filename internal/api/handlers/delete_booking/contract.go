package delete_booking

import (
	"context"

	"github.com/m04kA/sommerhus-booking/internal/service/bookings/models"
)

type BookingService interface {
	Delete(ctx context.Context, id string) *models.DeleteResult
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
