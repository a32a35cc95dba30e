package list_bookings

import (
	"net/http"

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

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list := h.service.List()

	h.logger.Info("GET /bookings - Returned %d bookings", len(list))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainBookings(list, h.service.Now()))
}
