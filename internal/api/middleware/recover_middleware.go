package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/RoyceAzure/lab/purchaseorder/pkg/api"
	"github.com/rs/zerolog/log"
)

func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", getRequestID(r)).
					Interface("panic", err).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				api.ErrorJSON(w, http.StatusInternalServerError, nil, "Error interno del servidor")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
