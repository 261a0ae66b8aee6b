package middleware

import (
	"fmt"
	"net/http"
)

// Recover turns a handler panic into a 500 response instead of tearing down
// the connection goroutine.
func (a *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				err := fmt.Errorf("%s", p)
				a.log.Error(r.Context(), "recovered from panic", err, "URL", r.URL.Path)

				w.Header().Set("Connection", "close")
				errorResponse(w, http.StatusInternalServerError, err.Error())
			}
		}()

		next.ServeHTTP(w, r)
	})
}
