package eventbus

import "errors"

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации продюсера
	ErrInvalidConfig = errors.New("eventbus: invalid config")

	// ErrPublisherClosed возвращается при публикации после закрытия
	ErrPublisherClosed = errors.New("eventbus: publisher is closed")

	// ErrEncode возвращается, если событие не удалось сериализовать
	ErrEncode = errors.New("eventbus: failed to encode event")

	// ErrPublish возвращается при ошибке записи в Kafka
	ErrPublish = errors.New("eventbus: failed to publish")
)
