package notifier

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/sommerhus-booking/internal/domain"
)

// Recipient кому адресовано уведомление
type Recipient string

const (
	RecipientOwner     Recipient = "owner"
	RecipientRequester Recipient = "requester"
)

// Outcome тип события бронирования
type Outcome string

const (
	OutcomeCreatedNeedsApproval Outcome = "created-needs-approval"
	OutcomeCreatedAutoConfirmed Outcome = "created-auto-confirmed"
	OutcomeApproved             Outcome = "approved"
	OutcomeRejected             Outcome = "rejected"
)

// BookingSnapshot данные бронирования на момент события
type BookingSnapshot struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Guests     int       `json:"guests"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	StayLength int       `json:"stayLength"`
	Comment    string    `json:"comment"` // комментарий или NoCommentPlaceholder
}

// Event событие для отправки через шлюз уведомлений
type Event struct {
	ID         string          `json:"id"`
	Recipient  Recipient       `json:"recipient"`
	Outcome    Outcome         `json:"outcome"`
	Booking    BookingSnapshot `json:"booking"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// NewEvent создает событие по бронированию
func NewEvent(recipient Recipient, outcome Outcome, booking *domain.Booking, now time.Time) Event {
	comment := booking.Comment
	if comment == "" {
		comment = domain.NoCommentPlaceholder
	}

	return Event{
		ID:        uuid.NewString(),
		Recipient: recipient,
		Outcome:   outcome,
		Booking: BookingSnapshot{
			ID:         booking.ID,
			Name:       booking.Name,
			Guests:     booking.Guests,
			StartDate:  booking.StartDate,
			EndDate:    booking.EndDate,
			StayLength: booking.StayLength(),
			Comment:    comment,
		},
		OccurredAt: now,
	}
}

// NeedsApproval возвращает отметку о необходимости подтверждения для шаблона письма
func (e Event) NeedsApproval() string {
	switch e.Outcome {
	case OutcomeCreatedNeedsApproval:
		return "JA - KRÆVER GODKENDELSE"
	case OutcomeApproved:
		return "GODKENDT"
	case OutcomeRejected:
		return "AFVIST"
	default:
		return "Nej"
	}
}

// Message возвращает текст уведомления
func (e Event) Message() string {
	switch e.Outcome {
	case OutcomeCreatedNeedsApproval:
		return fmt.Sprintf("%s har anmodet om at booke sommerhuset i %d dage. "+
			"Denne booking kræver jeres godkendelse da den er over %d dage.",
			e.Booking.Name, e.Booking.StayLength, domain.ApprovalThresholdDays)
	case OutcomeCreatedAutoConfirmed:
		return fmt.Sprintf("%s har booket sommerhuset. Bookingen er automatisk bekræftet.", e.Booking.Name)
	case OutcomeApproved:
		return fmt.Sprintf("Din booking af sommerhuset er blevet godkendt! "+
			"Husk at uploade flybilletter inden %d dage.", domain.TicketDeadlineDays)
	case OutcomeRejected:
		return "Din booking af sommerhuset er desværre blevet afvist. Kontakt os venligst for mere information."
	default:
		return ""
	}
}
