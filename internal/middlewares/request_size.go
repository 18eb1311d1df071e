package middlewares

import (
	"net/http"
)

// RequestSizeLimitMiddleware rejects request bodies larger than limit bytes.
// Declared lengths above the limit get an immediate 413; chunked bodies are
// cut off by MaxBytesReader once the handler reads past the limit.
func RequestSizeLimitMiddleware(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				w.Write([]byte(`{"error":"request body too large"}`))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
