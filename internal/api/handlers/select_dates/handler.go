package select_dates

import (
	"net/http"

	"github.com/m04kA/sommerhus-booking/internal/api/handlers"
	"github.com/m04kA/sommerhus-booking/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	selector Selector
	clock    Clock
	logger   Logger
}

func NewHandler(selector Selector, clock Clock, logger Logger) *Handler {
	return &Handler{
		selector: selector,
		clock:    clock,
		logger:   logger,
	}
}

// Click POST /api/v1/selection/clicks
func (h *Handler) Click(w http.ResponseWriter, r *http.Request) {
	var req ClickRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection/clicks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		h.logger.Warn("POST /selection/clicks - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result := h.selector.Click(date)

	h.logger.Info("POST /selection/clicks - date=%s, state=%s, open_form=%t", req.Date, result.State, result.OpenForm)
	handlers.RespondJSON(w, http.StatusOK, FromResult(result, h.clock.Now()))
}

// Cancel DELETE /api/v1/selection
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	result := h.selector.Cancel()

	h.logger.Info("DELETE /selection - Selection cancelled")
	handlers.RespondJSON(w, http.StatusOK, FromResult(result, h.clock.Now()))
}

// Current GET /api/v1/selection
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromResult(h.selector.Current(), h.clock.Now()))
}
