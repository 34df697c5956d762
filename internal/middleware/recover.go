package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jems1213/nexus/internal/utils"
)

// Recover turns panics into a 500 response. The panic value is echoed in
// the body only when dev is true; production callers get a generic message.
func Recover(dev bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.Error("panic recovered",
						"path", r.URL.Path,
						"panic", rec,
						"stack", string(debug.Stack()),
					)
					msg := "Internal server error"
					if dev {
						msg = fmt.Sprintf("Internal server error: %v", rec)
					}
					utils.Fail(w, http.StatusInternalServerError, msg)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
