// Package metrics owns the Prometheus registry served on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nexus_admin"

type Collector struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	FormSubmissions     *prometheus.CounterVec
	AuditEvents         *prometheus.CounterVec
	AuditDropped        prometheus.Counter
}

// New creates a Collector with its own registry, plus the Go and process
// collectors.
func New() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status_code"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		FormSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submissions_total",
			Help:      "Modal submissions by entity and outcome",
		}, []string{"entity", "outcome"}),
		AuditEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_events_total",
			Help:      "Audit events accepted by the queue",
		}, []string{"action"}),
		AuditDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_events_dropped_total",
			Help:      "Audit events dropped because the queue was full",
		}),
	}
	reg.MustRegister(
		c.HTTPRequestsTotal,
		c.HTTPRequestDuration,
		c.FormSubmissions,
		c.AuditEvents,
		c.AuditDropped,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	c.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (c *Collector) RecordForm(entity, outcome string) {
	c.FormSubmissions.WithLabelValues(entity, outcome).Inc()
}

// Recorded and Dropped make the Collector an audit.Observer.
func (c *Collector) Recorded(action string) { c.AuditEvents.WithLabelValues(action).Inc() }
func (c *Collector) Dropped()               { c.AuditDropped.Inc() }

// WatchCollections exports the size of every collection on scrape.
func (c *Collector) WatchCollections(counts func() map[string]int) {
	c.registry.MustRegister(&collectionCollector{counts: counts})
}

var collectionDesc = prometheus.NewDesc(
	prometheus.BuildFQName(namespace, "", "collection_items"),
	"Number of items in each admin collection",
	[]string{"entity"}, nil,
)

type collectionCollector struct {
	counts func() map[string]int
}

func (cc *collectionCollector) Describe(ch chan<- *prometheus.Desc) { ch <- collectionDesc }

func (cc *collectionCollector) Collect(ch chan<- prometheus.Metric) {
	for entity, n := range cc.counts() {
		ch <- prometheus.MustNewConstMetric(collectionDesc, prometheus.GaugeValue, float64(n), entity)
	}
}
