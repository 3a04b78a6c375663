package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"bistro-boss-server/pkg/logger"
	"bistro-boss-server/pkg/response"
)

// Recovery catches any panic in downstream handlers, logs the stack trace,
// and returns a plain 500 to the client.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()
				logger.Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"stack", string(stack),
					"method", r.Method,
					"path", r.URL.Path,
				)
				response.InternalError(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
