package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pkordes/commutepro/internal/domain"
	"github.com/pkordes/commutepro/internal/service"
	"github.com/pkordes/commutepro/internal/views"
)

// GetPage handles GET /. It shows the setup wizard while any answer is
// missing or the user came back through Settings, and the dashboard otherwise.
func (s *Server) GetPage(w http.ResponseWriter, r *http.Request) {
	_, setup, ok := s.session(w, r)
	if !ok {
		return
	}
	if setup.IsSetupView() {
		s.renderSetup(w, r, http.StatusOK, setup, views.Drafts{})
		return
	}
	recs, err := s.wizard.Recommendations(r.Context(), setup)
	if err != nil {
		internalError(w, r, "dashboard: recommendations", err)
		return
	}
	var buf bytes.Buffer
	if err := views.RenderDashboard(&buf, views.NewDashboardPage(setup, recs)); err != nil {
		internalError(w, r, "dashboard: render", err)
		return
	}
	writeHTML(w, http.StatusOK, &buf)
}

// PostLocations handles POST /setup/locations.
func (s *Server) PostLocations(w http.ResponseWriter, r *http.Request) {
	id, setup, ok := s.session(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	form := service.LocationForm{Home: r.PostFormValue("home"), Office: r.PostFormValue("office")}
	_, err := s.wizard.SaveLocations(r.Context(), id, form)
	s.afterSave(w, r, setup, err, views.Drafts{Location: &form})
}

// PostOfficeHours handles POST /setup/office-hours.
func (s *Server) PostOfficeHours(w http.ResponseWriter, r *http.Request) {
	id, setup, ok := s.session(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	form := service.NewOfficeHoursForm(nil).WithTimes(r.PostFormValue("start"), r.PostFormValue("end"))
	_, err := s.wizard.SaveOfficeWindow(r.Context(), id, form)
	s.afterSave(w, r, setup, err, views.Drafts{Office: &form})
}

// PostHomeHours handles POST /setup/home-hours. A successful save also
// leaves the setup view.
func (s *Server) PostHomeHours(w http.ResponseWriter, r *http.Request) {
	id, setup, ok := s.session(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	form := service.NewHomeHoursForm(nil).WithTimes(r.PostFormValue("start"), r.PostFormValue("end"))
	_, err := s.wizard.SaveHomeWindow(r.Context(), id, form)
	s.afterSave(w, r, setup, err, views.Drafts{Home: &form})
}

// PostSettings handles POST /settings: back to the setup view, answers kept.
func (s *Server) PostSettings(w http.ResponseWriter, r *http.Request) {
	id, setup, ok := s.session(w, r)
	if !ok {
		return
	}
	_, err := s.wizard.OpenSettings(r.Context(), id)
	s.afterSave(w, r, setup, err, views.Drafts{})
}

// PostDashboard handles POST /dashboard ("View Dashboard").
func (s *Server) PostDashboard(w http.ResponseWriter, r *http.Request) {
	id, setup, ok := s.session(w, r)
	if !ok {
		return
	}
	_, err := s.wizard.ViewDashboard(r.Context(), id)
	s.afterSave(w, r, setup, err, views.Drafts{})
}

// afterSave finishes a POST: redirect home on success, re-render the setup
// page with the rejected draft on validation failure.
func (s *Server) afterSave(w http.ResponseWriter, r *http.Request, setup domain.Setup, err error, drafts views.Drafts) {
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, domain.ErrValidation):
		drafts.Error = service.ValidationText(err)
		s.renderSetup(w, r, http.StatusUnprocessableEntity, setup, drafts)
	case errors.Is(err, domain.ErrNotFound):
		// The session expired between lookup and save; the next GET starts over.
		http.Redirect(w, r, "/", http.StatusSeeOther)
	default:
		internalError(w, r, "save setup", err)
	}
}

func (s *Server) renderSetup(w http.ResponseWriter, r *http.Request, status int, setup domain.Setup, drafts views.Drafts) {
	var buf bytes.Buffer
	if err := views.RenderSetup(&buf, views.NewSetupPage(setup, drafts)); err != nil {
		internalError(w, r, "setup: render", err)
		return
	}
	writeHTML(w, status, &buf)
}

// parseForm reads a urlencoded body. It reports false after answering 413
// for oversized bodies or 400 for malformed ones.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large", "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "bad_request", "malformed form body")
		return false
	}
	return true
}

func writeHTML(w http.ResponseWriter, status int, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("write response failed", "error", err)
	}
}
