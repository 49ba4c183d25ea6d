package middleware

import (
	"context"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

type contextKey string

const tokenKey contextKey = "qwiky_token"

// ResolveToken возвращает токен для внешнего API
// Заголовок вида "Bearer <token>" (регистр и один пробел важны) переопределяет токен по умолчанию
func ResolveToken(authorization, defaultToken string) string {
	if strings.HasPrefix(authorization, bearerPrefix) {
		return strings.TrimPrefix(authorization, bearerPrefix)
	}
	return defaultToken
}

// BearerToken кладёт в контекст запроса токен для внешнего API
func BearerToken(defaultToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ResolveToken(r.Header.Get("Authorization"), defaultToken)
			ctx := context.WithValue(r.Context(), tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetToken извлекает токен из контекста
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}
