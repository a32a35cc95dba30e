package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/sommerhus-booking/internal/api/handlers"
	"github.com/m04kA/sommerhus-booking/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "укажите имя и количество гостей (минимум 1)"
	msgDateConflict       = "выбранные даты уже заняты"
)

type Handler struct {
	service   BookingService
	selection SelectionResetter
	logger    Logger
}

func NewHandler(service BookingService, selection SelectionResetter, logger Logger) *Handler {
	return &Handler{
		service:   service,
		selection: selection,
		logger:    logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Propose(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookings.ErrDateConflict):
			h.logger.Warn("POST /bookings - Date conflict: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgDateConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Форма закрыта, выбор дат начинается заново
	if h.selection != nil {
		h.selection.Cancel()
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, status=%s", result.Booking.ID, result.Booking.Status)
	handlers.RespondJSON(w, http.StatusCreated, &CreateBookingResponse{
		Booking:          handlers.FromDomainBooking(result.Booking, h.service.Now()),
		StayLength:       result.StayLength,
		RequiresApproval: result.RequiresApproval,
		Persisted:        result.Persisted,
		Notified:         result.Notified,
	})
}
