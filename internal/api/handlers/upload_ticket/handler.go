package upload_ticket

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/sommerhus-booking/internal/api/handlers"
	"github.com/m04kA/sommerhus-booking/internal/service/bookings"
)

const (
	formField = "file"

	msgInvalidForm  = "ожидается multipart форма с полем file"
	msgInvalidImage = "файл должен быть изображением"
	msgNotFound     = "бронирование не найдено"
)

type Handler struct {
	service  BookingService
	maxBytes int64
	logger   Logger
}

func NewHandler(service BookingService, maxBytes int64, logger Logger) *Handler {
	return &Handler{
		service:  service,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/ticket
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		h.logger.Warn("POST /bookings/{id}/ticket - Invalid form: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	file, header, err := r.FormFile(formField)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/ticket - Missing file: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/ticket - Failed to read file: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	image, err := toDataURL(data)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/ticket - Invalid image %s: booking_id=%s, error=%v", header.Filename, bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidImage)
		return
	}

	result, err := h.service.UploadTicket(r.Context(), bookingID, image)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/ticket - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/ticket - Invalid input: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidImage)

		default:
			h.logger.Error("POST /bookings/{id}/ticket - Failed to upload ticket: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/ticket - Ticket uploaded: booking_id=%s, file=%s", bookingID, header.Filename)
	handlers.RespondJSON(w, http.StatusOK, &UploadTicketResponse{
		Booking:   handlers.FromDomainBooking(result.Booking, h.service.Now()),
		Persisted: result.Persisted,
	})
}
