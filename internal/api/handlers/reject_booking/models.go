package reject_booking

import "github.com/m04kA/sommerhus-booking/internal/api/handlers"

// MutationResponse HTTP response model
type MutationResponse struct {
	Booking   *handlers.BookingResponse `json:"booking"`
	Persisted bool                      `json:"persisted"`
	Notified  bool                      `json:"notified"`
}
