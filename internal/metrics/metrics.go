// Package metrics exposes prometheus collectors for the portfolio server.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "HTTP requests by route and status code",
		},
		[]string{"route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	regionsRevealed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_regions_revealed_total",
			Help: "Regions revealed during server-side page mounts",
		},
		[]string{"region"},
	)

	adminLogins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_admin_logins_total",
			Help: "Admin login attempts by result",
		},
		[]string{"result"},
	)

	visitorsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_visitors_recorded_total",
			Help: "Visitor rows written to the analytics store",
		},
	)
)

// Middleware records request counts and latency keyed by the matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// RegionRevealed counts one hidden to revealed transition for region.
func RegionRevealed(region string) {
	regionsRevealed.WithLabelValues(region).Inc()
}

// AdminLogin counts a login attempt by outcome.
func AdminLogin(ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	adminLogins.WithLabelValues(result).Inc()
}

// VisitorRecorded counts one visit row written.
func VisitorRecorded() {
	visitorsRecorded.Inc()
}
