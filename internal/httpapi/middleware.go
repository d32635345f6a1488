package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// withRequestID tags every request with an id, echoes it in the response
// header, and logs one line per request.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s request_id=%s duration=%s", r.Method, r.URL.Path, requestID, time.Since(start).Round(time.Microsecond))
	})
}
