package bookings

import (
	"context"
	"time"

	"github.com/m04kA/sommerhus-booking/internal/domain"
	"github.com/m04kA/sommerhus-booking/internal/integrations/notifier"
)

// Store интерфейс хранилища набора бронирований
type Store interface {
	Load(ctx context.Context) ([]*domain.Booking, error)
	Save(ctx context.Context, bookings []*domain.Booking) error
}

// NotificationGateway интерфейс шлюза уведомлений
type NotificationGateway interface {
	Available() bool
	Notify(ctx context.Context, event notifier.Event) error
}

// Metrics интерфейс метрик сервиса
type Metrics interface {
	IncBookingOperation(operation, result string)
	IncStoreFailure(operation string)
	SetBookings(status string, n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type nopMetrics struct{}

func (nopMetrics) IncBookingOperation(string, string) {}
func (nopMetrics) IncStoreFailure(string)             {}
func (nopMetrics) SetBookings(string, int)            {}
