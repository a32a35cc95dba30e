// Package notifier описывает шлюз уведомлений и объединяет несколько каналов доставки.
package notifier

import (
	"context"
	"fmt"
	"strings"
)

// Gateway канал доставки уведомлений
type Gateway interface {
	// Available сообщает, можно ли отправлять уведомления прямо сейчас
	Available() bool
	Notify(ctx context.Context, event Event) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics счетчики результатов доставки
type Metrics interface {
	IncNotification(gateway, result string)
}

// Named канал доставки с именем для логов и метрик
type Named struct {
	Name    string
	Gateway Gateway
}

// Multi рассылает событие во все доступные каналы.
// Доставка считается успешной, если сработал хотя бы один канал.
type Multi struct {
	gateways []Named
	metrics  Metrics
	logger   Logger
}

// NewMulti создает новый экземпляр шлюза
func NewMulti(logger Logger, metrics Metrics, gateways ...Named) *Multi {
	return &Multi{
		gateways: gateways,
		metrics:  metrics,
		logger:   logger,
	}
}

// Available возвращает true, если доступен хотя бы один канал
func (m *Multi) Available() bool {
	for _, g := range m.gateways {
		if g.Gateway.Available() {
			return true
		}
	}
	return false
}

// Notify отправляет событие во все доступные каналы
func (m *Multi) Notify(ctx context.Context, event Event) error {
	var (
		delivered int
		failures  []string
	)

	for _, g := range m.gateways {
		if !g.Gateway.Available() {
			m.inc(g.Name, "unavailable")
			continue
		}

		if err := g.Gateway.Notify(ctx, event); err != nil {
			m.logger.Warn("Notify: gateway=%s failed for event=%s outcome=%s: %v", g.Name, event.ID, event.Outcome, err)
			m.inc(g.Name, "failed")
			failures = append(failures, fmt.Sprintf("%s: %v", g.Name, err))
			continue
		}

		m.logger.Info("Notify: gateway=%s delivered event=%s outcome=%s", g.Name, event.ID, event.Outcome)
		m.inc(g.Name, "delivered")
		delivered++
	}

	if delivered > 0 {
		return nil
	}
	if len(failures) == 0 {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %s", ErrDeliveryFailed, strings.Join(failures, "; "))
}

func (m *Multi) inc(gateway, result string) {
	if m.metrics != nil {
		m.metrics.IncNotification(gateway, result)
	}
}
