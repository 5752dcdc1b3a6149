package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tvmai/merchant-admin/pkg/correlationid"
)

// CorrelationID attaches a correlation ID to every request context: the
// inbound header value when present, a fresh UUID otherwise. The ID is
// echoed on the response so screens and logs can be matched up.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(correlationid.Header)
			if id == "" {
				id = uuid.NewString()
			}

			ctx := correlationid.NewContext(r.Context(), id)
			w.Header().Set(correlationid.Header, id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
