package delete_booking

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/sommerhus-booking/internal/api/handlers"
)

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

// Handle DELETE /api/v1/bookings/{bookingId}
// Повторное удаление не ошибка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result := h.service.Delete(r.Context(), bookingID)

	h.logger.Info("DELETE /bookings/{id} - booking_id=%s, deleted=%t, persisted=%t",
		bookingID, result.Deleted, result.Persisted)
	handlers.RespondJSON(w, http.StatusOK, &DeleteResponse{
		Deleted:   result.Deleted,
		Persisted: result.Persisted,
	})
}
