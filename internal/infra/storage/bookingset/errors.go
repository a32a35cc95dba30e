package bookingset

import "errors"

var (
	// ErrUnsupportedDriver возвращается для неизвестного драйвера БД
	ErrUnsupportedDriver = errors.New("bookingset.repository: unsupported driver")

	// ErrEmptySessionKey возвращается, когда ключ сессии не задан
	ErrEmptySessionKey = errors.New("bookingset.repository: empty session key")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bookingset.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bookingset.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bookingset.repository: failed to scan row")

	// ErrEncode возвращается, если набор бронирований не удалось сериализовать
	ErrEncode = errors.New("bookingset.repository: failed to encode booking set")

	// ErrDecode возвращается, если сохраненный набор не удалось прочитать
	ErrDecode = errors.New("bookingset.repository: failed to decode booking set")
)
