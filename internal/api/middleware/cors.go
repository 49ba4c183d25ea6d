package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS разрешает любые origin, методы и заголовки, включая credentials
// Origin возвращается эхом, так как "*" вместе с credentials браузеры не принимают
func CORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowOriginFunc: func(string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
			http.MethodHead,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler
}
