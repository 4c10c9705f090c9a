// Package metrics records marketplace activity in Prometheus.
package metrics

import (
	"net/http"

	"heyfarmer/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "heyfarmer"

// Recorder implements service.MarketplaceMetrics on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	searches      prometheus.Counter
	searchResults prometheus.Histogram
	contacts      *prometheus.CounterVec
	messages      prometheus.Counter
	subscribers   prometheus.Gauge
}

// NewRecorder registers the marketplace collectors together with the Go
// runtime and process collectors.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		searches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listing_searches_total",
			Help:      "Marketplace feed searches served.",
		}),
		searchResults: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "listing_search_results",
			Help:      "Listings returned per feed search.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 200},
		}),
		contacts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_attempts_total",
			Help:      "Contact actions by outcome.",
		}, []string{"outcome"}),
		messages: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_sent_total",
			Help:      "Messages persisted.",
		}),
		subscribers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "realtime_subscribers",
			Help:      "Live realtime conversation subscribers.",
		}),
	}
}

// NewMarketplaceMetrics exposes recorder as the domain metrics interface.
func NewMarketplaceMetrics(recorder *Recorder) service.MarketplaceMetrics {
	return recorder
}

func (r *Recorder) SearchPerformed(resultCount int) {
	r.searches.Inc()
	r.searchResults.Observe(float64(resultCount))
}

func (r *Recorder) ContactAttempt(outcome string) {
	r.contacts.WithLabelValues(outcome).Inc()
}

func (r *Recorder) MessageSent() {
	r.messages.Inc()
}

func (r *Recorder) SubscriberDelta(delta int) {
	r.subscribers.Add(float64(delta))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
