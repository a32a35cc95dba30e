package approve_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/sommerhus-booking/internal/api/handlers"
	"github.com/m04kA/sommerhus-booking/internal/service/bookings"
)

const msgNotPending = "нет ожидающего бронирования с таким ID"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.Approve(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("PATCH /bookings/{id}/approve - No pending booking: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotPending)
			return
		}
		h.logger.Error("PATCH /bookings/{id}/approve - Failed to approve booking: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /bookings/{id}/approve - Booking approved: booking_id=%s, notified=%t", bookingID, result.Notified)
	handlers.RespondJSON(w, http.StatusOK, &MutationResponse{
		Booking:   handlers.FromDomainBooking(result.Booking, h.service.Now()),
		Persisted: result.Persisted,
		Notified:  result.Notified,
	})
}
