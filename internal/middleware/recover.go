package middleware

import (
	"net/http"
	"runtime/debug"

	"cattery-cms/internal/platform/logger"
	"cattery-cms/internal/platform/respond"
)

// Recover reemplaza a chimw.Recoverer: responde {"detail": ...} como el resto de la API
// y loguea con el logger del request.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.FromContext(r.Context()).Error("panic recovered", map[string]any{
				"panic": rec,
				"stack": string(debug.Stack()),
			})
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}()
		next.ServeHTTP(w, r)
	})
}
