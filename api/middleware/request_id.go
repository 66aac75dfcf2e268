package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/nikhilbhatia/shopsight-backend/pkg/logger"
)

const (
	requestIDHeader = "X-Request-Id"

	// Inbound IDs come from upstream proxies in whatever format they use;
	// anything longer than this is truncated before it reaches the logs.
	maxRequestIDLen = 64
)

// RequestID tags every request with an ID, echoing the upstream header when
// one arrives and minting a uuid otherwise. The ID is attached to the
// response and to the request-scoped logger.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := inboundRequestID(r)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func inboundRequestID(r *http.Request) string {
	id := strings.TrimSpace(r.Header.Get(requestIDHeader))
	if len(id) > maxRequestIDLen {
		id = id[:maxRequestIDLen]
	}
	return id
}
