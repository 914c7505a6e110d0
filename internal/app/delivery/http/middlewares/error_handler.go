package middlewares

import (
	"chaipoint-service/internal/pkg/utils"
	"fmt"
	"net/http"
)

// ErrorHandler converts handler panics into the standard error envelope
// instead of letting chi's recoverer print a stack trace to the client.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rec)
				}
				utils.BuildErrorResponse(m.Log, w, err)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
