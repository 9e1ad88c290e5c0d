// Package metrics contains the Prometheus collectors exported at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RecipeViews         prometheus.Counter
	RecipesSaved        *prometheus.CounterVec
	ReviewsSubmitted    prometheus.Counter
	CatalogSearches     prometheus.Counter
	Registrations       prometheus.Counter
	LoginFailures       prometheus.Counter
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		RecipeViews: factory.NewCounter(prometheus.CounterOpts{
			Name: "recipebox_recipe_views_total",
			Help: "Total number of recipe detail views",
		}),
		RecipesSaved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipebox_recipes_saved_total",
				Help: "Total number of recipes created or updated",
			},
			[]string{"operation"},
		),
		ReviewsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "recipebox_reviews_submitted_total",
			Help: "Total number of reviews created or updated",
		}),
		CatalogSearches: factory.NewCounter(prometheus.CounterOpts{
			Name: "recipebox_catalog_searches_total",
			Help: "Total number of catalog listings served",
		}),
		Registrations: factory.NewCounter(prometheus.CounterOpts{
			Name: "recipebox_registrations_total",
			Help: "Total number of accounts registered",
		}),
		LoginFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "recipebox_login_failures_total",
			Help: "Total number of rejected login attempts",
		}),
	}
}

// Null returns collectors that are not registered anywhere.
func Null() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) RecipeViewed() {
	if m == nil {
		return
	}
	m.RecipeViews.Inc()
}

func (m *Metrics) RecipeSaved(created bool) {
	if m == nil {
		return
	}
	op := "update"
	if created {
		op = "create"
	}
	m.RecipesSaved.WithLabelValues(op).Inc()
}

func (m *Metrics) ReviewSubmitted() {
	if m == nil {
		return
	}
	m.ReviewsSubmitted.Inc()
}

func (m *Metrics) CatalogSearched() {
	if m == nil {
		return
	}
	m.CatalogSearches.Inc()
}

func (m *Metrics) Registered() {
	if m == nil {
		return
	}
	m.Registrations.Inc()
}

func (m *Metrics) LoginFailed() {
	if m == nil {
		return
	}
	m.LoginFailures.Inc()
}
