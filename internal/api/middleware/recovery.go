package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/arenarounds/internal/api/apierr"
	"github.com/mcoot/arenarounds/internal/middleware"
)

// Recovery creates panic recovery middleware for the API.
// A panic inside a handler, including one raised by a special round hook
// invoked from a handler, becomes a JSON 500.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, writeInternalError)
}

func writeInternalError(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
