package upload_ticket

import (
	"context"
	"time"

	"github.com/m04kA/sommerhus-booking/internal/service/bookings/models"
)

type BookingService interface {
	UploadTicket(ctx context.Context, id string, image string) (*models.MutationResult, error)
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
