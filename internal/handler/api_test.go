package handler_test

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/commutepro/internal/domain"
	"github.com/pkordes/commutepro/internal/handler"
)

func getSetup(t *testing.T, setup domain.Setup, query string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := withSession(httptest.NewRequest(http.MethodGet, "/api/setup"+query, nil))
	newHTTPHandler(existing(setup)).ServeHTTP(rec, req)
	return rec
}

func TestGetSetup_Incomplete(t *testing.T) {
	setup := domain.Setup{}.SaveLocations(domain.LocationData{Home: "h", Office: "o"})

	rec := getSetup(t, setup, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{
		"step": "no_office_window",
		"setup_view": true,
		"setup": {"locations": {"home": "h", "office": "o"}, "show_setup": false}
	}`, rec.Body.String())
}

func TestGetSetup_CompleteIncludesRecommendations(t *testing.T) {
	rec := getSetup(t, completeSetup(), "?format=json")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.SetupResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.StepDashboard, resp.Step)
	assert.False(t, resp.SetupView)
	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, domain.DirectionToOffice, resp.Recommendations[0].Direction)
	assert.Equal(t, "08:45", resp.Recommendations[0].Recommendation.BestTime)
	assert.Equal(t, domain.DirectionToHome, resp.Recommendations[1].Direction)
	assert.Equal(t, 87, resp.Recommendations[1].Recommendation.Confidence)
}

func TestGetSetup_CSV(t *testing.T) {
	rec := getSetup(t, completeSetup(), "?format=csv")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "commute.csv")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"direction", "best_time", "eta_minutes", "traffic_status", "weather", "confidence"}, records[0])
	assert.Equal(t, []string{"toOffice", "08:45", "28", "optimal", "sunny", "92"}, records[1])
	assert.Equal(t, []string{"toHome", "18:15", "35", "moderate", "rainy", "87"}, records[2])
}

func TestGetSetup_CSV_409_Incomplete(t *testing.T) {
	rec := getSetup(t, domain.Setup{}, "?format=csv")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"setup_incomplete"`)
}

func TestGetSetup_400_UnknownFormat(t *testing.T) {
	rec := getSetup(t, completeSetup(), "?format=xml")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
