package admin_login

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/sommerhus-booking/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgWrongPassword      = "forkert adgangskode"
)

type Handler struct {
	password string
	logger   Logger
}

func NewHandler(password string, logger Logger) *Handler {
	return &Handler{
		password: password,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		h.logger.Warn("POST /admin/login - Wrong password")
		handlers.RespondUnauthorized(w, msgWrongPassword)
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
