package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	requestIDKey contextKey = "requestID"
)

const (
	headerUserID = "X-User-ID"
	msgBadUserID = "отсутствует или некорректен заголовок X-User-ID"
)

// Auth требует заголовок X-User-ID с положительным числом и кладёт его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(headerUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgBadUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя, установленный Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
