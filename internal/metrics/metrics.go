package metrics

import (
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	bookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carwash",
			Name:      "booking_transitions_total",
			Help:      "Bookings written with a given status, by status.",
		},
		[]string{"status"},
	)

	authEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carwash",
			Name:      "auth_events_total",
			Help:      "Signup, login and password reset outcomes.",
		},
		[]string{"event"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carwash",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "code"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingTransitions, authEvents, httpRequests)
	})
}

func IncBookingTransition(status string) {
	bookingTransitions.WithLabelValues(status).Inc()
}

func IncAuthEvent(event string) {
	authEvents.WithLabelValues(event).Inc()
}

func IncHTTP(method, route string, code int) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

// Handler exposes the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
