package middleware

import "net/http"

const tooLargeBody = `{"error":{"code":"too_large","message":"request body too large"}}` + "\n"

// NewMaxBodySizeHandler limits request bodies to limit bytes. A request whose
// Content-Length already exceeds the limit is answered 413 without reaching
// next; otherwise the body is wrapped in http.MaxBytesReader so a streamed
// body fails on read once it passes the limit.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.Header().Set("Connection", "close")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_, _ = w.Write([]byte(tooLargeBody))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
