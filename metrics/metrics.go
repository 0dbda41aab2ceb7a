// Package metrics exposes request and store-error counters in the
// prometheus text format.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"metaapi/dao"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	storeErr *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metaapi",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "metaapi",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		storeErr: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metaapi",
			Name:      "store_errors_total",
			Help:      "Database failures by store operation.",
		}, []string{"op"}),
	}
	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.storeErr,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware records every request under its route template, so
// /samples/1 and /samples/2 share a series. Store errors attached to the
// context with c.Error are counted by operation.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.requests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())

		for _, e := range c.Errors {
			var se *dao.StoreError
			if errors.As(e.Err, &se) {
				m.storeErr.WithLabelValues(se.Op).Inc()
			}
		}
	}
}

// Handler serves the registry.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
