package bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (пустое имя, гостей < 1, неполный диапазон)
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrDateConflict возвращается, когда выбранные даты уже заняты другим бронированием
	ErrDateConflict = errors.New("bookings: dates are already booked")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")
)
