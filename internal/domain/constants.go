package domain

import "time"

// Business rule constants
const (
	ApprovalThresholdDays = 14 // stays longer than this need owner approval
	TicketDeadlineDays    = 14
	TicketDeadline        = TicketDeadlineDays * 24 * time.Hour
	MinGuests             = 1
	MaxNameLength         = 100
	MaxCommentLength      = 1000
)

// Time format constants
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "2.1.2006"   // da-DK short date
)

// NoCommentPlaceholder is used in notifications when the booking has no comment
const NoCommentPlaceholder = "Ingen kommentar"
