// Package handler implements the HTTP front end of CommutePro.
// All handlers are methods on Server. Methods are split into files by concern
// (pages.go, api.go, health.go) but share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/commutepro/internal/domain"
	"github.com/pkordes/commutepro/internal/service"
	"github.com/pkordes/commutepro/internal/views"
	"github.com/pkordes/commutepro/spec"
)

// SessionCookie names the cookie carrying the wizard session id.
const SessionCookie = "commute_session"

// WizardServicer defines the wizard operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the session store.
type WizardServicer interface {
	Start(ctx context.Context) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Setup, error)
	SaveLocations(ctx context.Context, id uuid.UUID, form service.LocationForm) (domain.Setup, error)
	SaveOfficeWindow(ctx context.Context, id uuid.UUID, form service.TimeRangeForm) (domain.Setup, error)
	SaveHomeWindow(ctx context.Context, id uuid.UUID, form service.TimeRangeForm) (domain.Setup, error)
	OpenSettings(ctx context.Context, id uuid.UUID) (domain.Setup, error)
	ViewDashboard(ctx context.Context, id uuid.UUID) (domain.Setup, error)
	Recommendations(ctx context.Context, setup domain.Setup) ([]service.DirectedRecommendation, error)
}

// Options tunes cookie behaviour.
type Options struct {
	// SecureCookies marks the session cookie Secure (HTTPS only).
	SecureCookies bool
	// SessionTTL is the cookie lifetime, renewed on every request; it should
	// match the store's idle TTL.
	SessionTTL time.Duration
}

// Server serves the wizard pages and the JSON API.
type Server struct {
	wizard WizardServicer
	opts   Options
}

// NewServer constructs the Server with all its dependencies.
func NewServer(wizard WizardServicer, opts Options) *Server {
	return &Server{wizard: wizard, opts: opts}
}

// Routes registers every endpoint on r. api is applied to the /api group
// only (CORS belongs there, not on the HTML pages).
func (s *Server) Routes(r chi.Router, api ...func(http.Handler) http.Handler) {
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Get("/", s.GetPage)
	r.Post(views.ActionLocations, s.PostLocations)
	r.Post(views.ActionOfficeHours, s.PostOfficeHours)
	r.Post(views.ActionHomeHours, s.PostHomeHours)
	r.Post(views.ActionSettings, s.PostSettings)
	r.Post(views.ActionDashboard, s.PostDashboard)

	r.Group(func(r chi.Router) {
		r.Use(api...)
		r.Get("/api/setup", s.GetSetup)
	})
}

// session resolves the caller's wizard session from its cookie, starting a
// fresh one when the cookie is missing, malformed or points at an expired
// session. The cookie is re-issued on every resolve so its lifetime slides
// with the store's idle TTL. It reports false after writing an error response.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (uuid.UUID, domain.Setup, bool) {
	ctx := r.Context()
	if c, err := r.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			setup, err := s.wizard.Get(ctx, id)
			if err == nil {
				s.setSessionCookie(w, id)
				return id, setup, true
			}
			if !errors.Is(err, domain.ErrNotFound) {
				internalError(w, r, "load session", err)
				return uuid.Nil, domain.Setup{}, false
			}
			slog.DebugContext(ctx, "session expired, starting over", "session_id", id)
		}
	}

	id, err := s.wizard.Start(ctx)
	if err != nil {
		internalError(w, r, "start session", err)
		return uuid.Nil, domain.Setup{}, false
	}
	s.setSessionCookie(w, id)
	return id, domain.Setup{}, true
}

func (s *Server) setSessionCookie(w http.ResponseWriter, id uuid.UUID) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id.String(),
		Path:     "/",
		MaxAge:   int(s.opts.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	if _, err := w.Write(spec.OpenAPI); err != nil {
		slog.Error("openapi: write response failed", "error", err)
	}
}
