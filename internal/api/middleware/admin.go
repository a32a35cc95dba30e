package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/sommerhus-booking/internal/api/handlers"
)

// AdminPasswordHeader заголовок с паролем администратора
const AdminPasswordHeader = "X-Admin-Password"

const (
	msgAdminRequired = "требуется пароль администратора"
	msgAdminInvalid  = "неверный пароль администратора"
)

// Admin пропускает запрос только с правильным паролем администратора
func Admin(password string) func(http.Handler) http.Handler {
	secret := []byte(password)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminPasswordHeader)
			if got == "" {
				handlers.RespondUnauthorized(w, msgAdminRequired)
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), secret) != 1 {
				handlers.RespondForbidden(w, msgAdminInvalid)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
