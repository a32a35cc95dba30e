package models

import (
	"time"

	"github.com/m04kA/sommerhus-booking/internal/domain"
)

// ProposeRequest запрос на создание бронирования
type ProposeRequest struct {
	Start   time.Time `validate:"required"`
	End     time.Time `validate:"required"`
	Name    string    `validate:"required,max=100"`
	Guests  int       `validate:"min=1"`
	Comment string    `validate:"max=1000"`
}

// ProposeResult результат создания бронирования
type ProposeResult struct {
	Booking          *domain.Booking
	StayLength       int
	RequiresApproval bool
	Persisted        bool // false - набор не удалось сохранить, в памяти бронирование есть
	Notified         bool // false - владельцы могли не получить письмо
}

// MutationResult результат подтверждения, отклонения или загрузки билета
type MutationResult struct {
	Booking   *domain.Booking
	Persisted bool
	Notified  bool
}

// DeleteResult результат удаления
type DeleteResult struct {
	Deleted   bool // false - бронирования уже не было
	Persisted bool
}

// TicketStatus состояние загрузки билета; Overdue только для отображения
type TicketStatus struct {
	Uploaded bool
	Deadline time.Time
	Overdue  bool
}
