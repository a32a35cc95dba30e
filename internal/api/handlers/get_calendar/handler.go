package get_calendar

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/sommerhus-booking/internal/api/handlers"
)

const (
	msgInvalidYear  = "некорректный год"
	msgInvalidMonth = "некорректный месяц, ожидается 1-12"
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

// Handle GET /api/v1/calendar/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil || year < 1 || year > 9999 {
		h.logger.Warn("GET /calendar - Invalid year: %s", vars["year"])
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /calendar - Invalid month: %s", vars["month"])
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	days := h.service.Month(year, time.Month(month))
	handlers.RespondJSON(w, http.StatusOK, FromCalendarDays(year, month, days))
}
