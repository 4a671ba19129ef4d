package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(bookingTransitions.WithLabelValues("ACCEPTED"))
	IncBookingTransition("ACCEPTED")
	assert.Equal(t, before+1, testutil.ToFloat64(bookingTransitions.WithLabelValues("ACCEPTED")))

	before = testutil.ToFloat64(authEvents.WithLabelValues("login_success"))
	IncAuthEvent("login_success")
	assert.Equal(t, before+1, testutil.ToFloat64(authEvents.WithLabelValues("login_success")))

	before = testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/bookings", "200"))
	IncHTTP("GET", "/api/bookings", 200)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/bookings", "200")))
}

func TestHandlerExposesRegisteredCounters(t *testing.T) {
	Register()
	Register()
	IncAuthEvent("signup_success")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "carwash_auth_events_total")
}
