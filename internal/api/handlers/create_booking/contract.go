package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/sommerhus-booking/internal/selection"
	"github.com/m04kA/sommerhus-booking/internal/service/bookings/models"
)

type BookingService interface {
	Propose(ctx context.Context, req *models.ProposeRequest) (*models.ProposeResult, error)
	Now() time.Time
}

// SelectionResetter сбрасывает выбор дат после успешного бронирования
type SelectionResetter interface {
	Cancel() selection.Result
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
