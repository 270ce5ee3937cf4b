package middleware

import (
	"net/http"

	"github.com/vahanex/vahanex-server/internal/domain/types"
	wrap "github.com/vahanex/vahanex-server/pkg/logger/wrapper"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestID attaches a request ID to the context and echoes it back in the
// response headers. An inbound X-Request-Id is trusted and reused.
func (a *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			id, err := uuid.New()
			if err == nil {
				requestID = id.String()
			}
		}

		ctx := r.Context()
		if requestID != "" {
			ctx = types.WithRequestIDContext(ctx, requestID)
			ctx = wrap.WithRequestID(ctx, requestID)
			w.Header().Set(requestIDHeader, requestID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
