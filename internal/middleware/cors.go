// Package middleware provides the HTTP middleware wired in front of the
// CommutePro router.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware for the read-only JSON API.
// Each entry in allowedOrigins must be a full origin (scheme + host, no
// trailing slash). Credentials are allowed so a separately hosted front end
// can send the session cookie.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept"},
		AllowCredentials: true,
	})
	return c.Handler
}
