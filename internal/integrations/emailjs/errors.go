package emailjs

import "errors"

var (
	// ErrNotConfigured возвращается, когда ключи EmailJS не заданы
	ErrNotConfigured = errors.New("emailjs client: not configured")

	// ErrRejected возвращается, когда EmailJS отклонил запрос (неверный шаблон, ключ и т.д.)
	ErrRejected = errors.New("emailjs client: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("emailjs client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("emailjs client: invalid response")
)
