package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
)

// UserIDHeader заголовок с идентификатором сотрудника, выставляемый API gateway
const UserIDHeader = "X-User-ID"

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgLongUserID    = "заголовок X-User-ID слишком длинный"

	// Совпадает с размером колонок created_by / updated_by
	maxUserIDLength = 64
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth требует X-User-ID и кладёт его в контекст запроса
// Проверка прав выполняется внешним сервисом, здесь только атрибуция действий
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		if len(userID) > maxUserIDLength {
			handlers.RespondUnauthorized(w, msgLongUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает идентификатор пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// Actor возвращает идентификатор пользователя для полей created_by / updated_by
func Actor(ctx context.Context) *string {
	userID, ok := GetUserID(ctx)
	if !ok {
		return nil
	}
	return &userID
}
