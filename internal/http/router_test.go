package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intconfig "github.com/Madhavikareddy/IRCTC-Redesign/internal/config"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/flow"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/payment"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/session"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/trains"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/utils"
)

func testRouter(t *testing.T) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := trains.NewStaticCatalog()
	gateway := payment.NewSimulator(0, 1.0, nil) // instant, always approves
	sessions := session.NewManager(func(id string) *flow.Controller {
		return flow.New(catalog, gateway, flow.Options{
			PaymentTimeout: time.Second,
			RequestID:      id,
		})
	}, session.Options{TTL: time.Minute})

	env := intconfig.Env{CORSAllowedOrigins: []string{"*"}}
	return NewRouter(env, sessions, catalog), sessions
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func tomorrow() string {
	return utils.FormatDate(time.Now().AddDate(0, 0, 1))
}

func TestBookingHappyPathOverHTTP(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	sid, _ := decode(t, w)["sessionId"].(string)
	require.NotEmpty(t, sid)
	base := "/api/sessions/" + sid

	w = doJSON(t, r, http.MethodPost, base+"/search", gin.H{
		"from": "NDLS", "to": "HWH", "date": tomorrow(),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "results", body["screen"])
	assert.Len(t, body["results"], 5)

	w = doJSON(t, r, http.MethodPost, base+"/select", gin.H{"trainId": "3", "classCode": "SL"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decode(t, w)
	assert.Equal(t, "passenger", body["screen"])

	state := body["state"].(map[string]any)
	passengers := state["passengers"].([]any)
	require.Len(t, passengers, 1)
	pid := passengers[0].(map[string]any)["id"].(string)

	w = doJSON(t, r, http.MethodPut, base+"/passengers/"+pid, gin.H{
		"name": "Rahul Kumar", "age": "28", "gender": "male",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPut, base+"/contact", gin.H{
		"email": "rahul@example.in", "phone": "9876543210",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, base+"/review", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "review", decode(t, w)["screen"])

	w = doJSON(t, r, http.MethodGet, base+"/fare", nil)
	require.Equal(t, http.StatusOK, w.Code)
	fareBody := decode(t, w)["fare"].(map[string]any)
	assert.Equal(t, float64(580), fareBody["baseFare"])
	assert.Equal(t, float64(644), fareBody["total"])

	w = doJSON(t, r, http.MethodPost, base+"/payment", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, base+"/pay", gin.H{"method": "upi"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decode(t, w)
	assert.Equal(t, "confirmation", body["screen"])
	state = body["state"].(map[string]any)
	assert.Equal(t, "confirmed", state["bookingStatus"])
	assert.Len(t, state["pnr"], 10)

	w = doJSON(t, r, http.MethodGet, base+"/ticket", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}

func TestValidationErrorsCarryFieldDetails(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sessions", nil)
	sid, _ := decode(t, w)["sessionId"].(string)
	base := "/api/sessions/" + sid

	w = doJSON(t, r, http.MethodPost, base+"/search", gin.H{
		"from": "NDLS", "to": "NDLS", "date": tomorrow(),
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "validation_error", body["code"])
	details := body["details"].(map[string]any)
	assert.Equal(t, "Arrival station must be different from departure", details["to"])
}

func TestUnknownSessionIs404(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/sessions/nope/search", gin.H{"from": "NDLS"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCloseSessionThenGone(t *testing.T) {
	r, sessions := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sessions", nil)
	sid, _ := decode(t, w)["sessionId"].(string)
	require.Equal(t, 1, sessions.Len())

	w = doJSON(t, r, http.MethodDelete, "/api/sessions/"+sid, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, sessions.Len())

	w = doJSON(t, r, http.MethodGet, "/api/sessions/"+sid, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketBeforeConfirmationIsConflict(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sessions", nil)
	sid, _ := decode(t, w)["sessionId"].(string)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/sessions/%s/ticket", sid), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReferenceEndpoints(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/stations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["stations"], 15)

	w = doJSON(t, r, http.MethodGet, "/api/classes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["classes"], 6)

	w = doJSON(t, r, http.MethodGet, "/api/quotas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["quotas"], 6)

	w = doJSON(t, r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDHeaderRoundTrip(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "trace-me")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "trace-me", w.Header().Get("X-Request-ID"))

	w2 := doJSON(t, r, http.MethodGet, "/api/health", nil)
	assert.NotEmpty(t, w2.Header().Get("X-Request-ID"))
}
