package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/pkordes/commutepro/internal/domain"
	"github.com/pkordes/commutepro/internal/service"
)

// csvHeaders is the first row of GET /api/setup?format=csv.
var csvHeaders = []string{
	"direction", "best_time", "eta_minutes", "traffic_status", "weather", "confidence",
}

// SetupResponse is the body of GET /api/setup.
type SetupResponse struct {
	Step      domain.Step  `json:"step"`
	SetupView bool         `json:"setup_view"`
	Setup     domain.Setup `json:"setup"`
	// Recommendations is present only once every answer exists.
	Recommendations []service.DirectedRecommendation `json:"recommendations,omitempty"`
}

// GetSetup handles GET /api/setup.
// It returns the caller's wizard state as JSON. Use ?format=csv to receive the
// recommendations as CSV instead; that form answers 409 while setup is incomplete.
func (s *Server) GetSetup(w http.ResponseWriter, r *http.Request) {
	_, setup, ok := s.session(w, r)
	if !ok {
		return
	}

	var recs []service.DirectedRecommendation
	if setup.Complete() {
		var err error
		recs, err = s.wizard.Recommendations(r.Context(), setup)
		if err != nil {
			internalError(w, r, "api setup: recommendations", err)
			return
		}
	}

	switch r.URL.Query().Get("format") {
	case "", "json":
		writeJSON(w, http.StatusOK, SetupResponse{
			Step:            setup.Step(),
			SetupView:       setup.IsSetupView(),
			Setup:           setup,
			Recommendations: recs,
		})
	case "csv":
		if !setup.Complete() {
			writeError(w, http.StatusConflict, "setup_incomplete", "finish setup before exporting recommendations")
			return
		}
		writeCSV(w, recs)
	default:
		writeError(w, http.StatusBadRequest, "bad_request", "format must be json or csv")
	}
}

// writeCSV encodes recs with csvHeaders as the first row.
func writeCSV(w http.ResponseWriter, recs []service.DirectedRecommendation) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range recs {
		//nolint:errcheck
		cw.Write(recommendationRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="commute.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func recommendationRecord(r service.DirectedRecommendation) []string {
	rec := r.Recommendation
	return []string{
		string(r.Direction),
		rec.BestTime,
		strconv.Itoa(rec.ETA),
		string(rec.TrafficStatus),
		string(rec.Weather),
		strconv.Itoa(rec.Confidence),
	}
}
