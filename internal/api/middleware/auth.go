package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
)

// Auth проверяет наличие заголовка X-User-ID и кладет ID пользователя
// в контекст запроса. Аутентификацию выполняет внешний шлюз,
// сервис доверяет заголовку.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(userIDHeader)
		if header == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
