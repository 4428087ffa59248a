package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bookingsRepo "shotz/database/repository/bookings"
	"shotz/handlers"
	"shotz/models"
	"shotz/routes"
	"shotz/services/booking"
	"shotz/services/calendar"
	"shotz/services/catalog"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	logger := zap.NewNop()

	sessionSvc := &booking.DefaultSessionService{
		Catalog:     catalog.Default(),
		Repo:        bookingsRepo.NewRedisBookingRepo(client),
		CalendarSvc: calendar.NewSimulatedClient(0, logger),
		Cache:       client,
		SessionTTL:  10 * time.Minute,
		Logger:      logger,
	}

	router := gin.New()
	routes.RegisterBookingRoutes(router, handlers.NewBookingHandler(sessionSvc, logger))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestWizardEndToEnd(t *testing.T) {
	router := newBookingRouter(t)

	w, body := doJSON(t, router, http.MethodPost, "/api/booking/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sessionID, _ := body["sessionId"].(string)
	require.NotEmpty(t, sessionID)
	base := "/api/booking/session/" + sessionID

	w, _ = doJSON(t, router, http.MethodPut, base+"/service", gin.H{"serviceId": "music-videos"})
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, router, http.MethodPut, base+"/package", gin.H{"packageName": "Standard"})
	require.Equal(t, http.StatusOK, w.Code)

	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	w, _ = doJSON(t, router, http.MethodPut, base+"/schedule", gin.H{"date": date, "time": "10:00 AM"})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodPut, base+"/contact", gin.H{
		"name":  "John Doe",
		"email": "john@example.com",
		"phone": "555-0100",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodPut, base+"/payment", gin.H{"paymentMethod": models.PaymentPaypal})
	require.Equal(t, http.StatusOK, w.Code)

	for i := 0; i < 3; i++ {
		w, body = doJSON(t, router, http.MethodPost, base+"/advance", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["advanced"], "advance %d", i+1)
	}

	// The fourth advance performs the submission.
	w, body = doJSON(t, router, http.MethodPost, base+"/advance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["advanced"])
	confirmation, ok := body["confirmation"].(map[string]any)
	require.True(t, ok, "submission response carries a confirmation")
	assert.Equal(t, "Music Videos", confirmation["service"])
	assert.Equal(t, "Standard", confirmation["package"])
	assert.Equal(t, float64(500), confirmation["deposit"])
	assert.Equal(t, models.StatusPending, confirmation["status"])

	// Submitting again is a conflict.
	w, _ = doJSON(t, router, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdvanceReportsMissingFields(t *testing.T) {
	router := newBookingRouter(t)

	_, body := doJSON(t, router, http.MethodPost, "/api/booking/session", nil)
	sessionID, _ := body["sessionId"].(string)
	require.NotEmpty(t, sessionID)

	w, body := doJSON(t, router, http.MethodPost, "/api/booking/session/"+sessionID+"/advance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["advanced"])
	assert.ElementsMatch(t, []any{"service", "package"}, body["missing"])
}

func TestSessionNotFoundResponses(t *testing.T) {
	router := newBookingRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/booking/session/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/booking/session/missing/advance", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidationResponses(t *testing.T) {
	router := newBookingRouter(t)

	_, body := doJSON(t, router, http.MethodPost, "/api/booking/session", nil)
	sessionID, _ := body["sessionId"].(string)
	require.NotEmpty(t, sessionID)
	base := "/api/booking/session/" + sessionID

	w, _ := doJSON(t, router, http.MethodPut, base+"/service", gin.H{"serviceId": "no-such-service"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, router, http.MethodPut, base+"/package", gin.H{"packageName": "Standard"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "package before service")

	w, _ = doJSON(t, router, http.MethodPut, base+"/payment", gin.H{"paymentMethod": "bitcoin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "incomplete draft")
}

func TestStartSessionWithQueryPreselection(t *testing.T) {
	router := newBookingRouter(t)

	w, body := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/booking/session?service=%s&package=%s", "weddings", "Classic"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	draft, ok := body["draft"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "weddings", draft["serviceId"])
	assert.Equal(t, "Classic", draft["packageName"])
}
