package notifier

import "errors"

var (
	// ErrUnavailable возвращается, когда ни один канал доставки не настроен
	ErrUnavailable = errors.New("notifier: no gateway available")

	// ErrDeliveryFailed возвращается, когда все доступные каналы вернули ошибку
	ErrDeliveryFailed = errors.New("notifier: delivery failed")
)
