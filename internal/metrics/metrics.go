// Package metrics provides Prometheus metrics for the fusion pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metric names as constants for consistency.
const (
	MetricRecordsIngested = "fusion_records_ingested_total"
	MetricProductsCreated = "fusion_products_created_total"
	MetricProductsMerged  = "fusion_products_merged_total"
	MetricDegenerateNames = "fusion_degenerate_names_total"
	MetricRunDuration     = "fusion_run_duration_seconds"
)

// Pipeline contains Prometheus metrics for a fusion run.
// All operations are thread-safe.
type Pipeline struct {
	recordsIngested *prometheus.CounterVec
	productsCreated prometheus.Counter
	productsMerged  prometheus.Counter
	degenerateNames prometheus.Counter
	runDuration     prometheus.Histogram
}

// NewPipeline creates and returns a new Pipeline metrics instance with all
// collectors initialized. The metrics are not registered; call Register to
// register them with a registry.
func NewPipeline() *Pipeline {
	return &Pipeline{
		recordsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricRecordsIngested,
			Help: "Total number of source records ingested, labeled by source",
		}, []string{"source"}),
		productsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricProductsCreated,
			Help: "Total number of canonical products created by the resolver",
		}),
		productsMerged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricProductsMerged,
			Help: "Total number of records merged into an existing product",
		}),
		degenerateNames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricDegenerateNames,
			Help: "Total number of records dropped for a degenerate canonical name",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    MetricRunDuration,
			Help:    "Histogram of end-to-end pipeline run duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Register registers all metrics with the given registry.
// Returns an error if registration fails.
func (p *Pipeline) Register(reg prometheus.Registerer) error {
	for _, c := range p.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// IncRecordsIngested increments the ingested-records counter for a source.
func (p *Pipeline) IncRecordsIngested(source string) {
	p.recordsIngested.WithLabelValues(source).Inc()
}

// IncProductsCreated increments the products-created counter.
func (p *Pipeline) IncProductsCreated() {
	p.productsCreated.Inc()
}

// IncProductsMerged increments the merged-records counter.
func (p *Pipeline) IncProductsMerged() {
	p.productsMerged.Inc()
}

// IncDegenerateNames increments the dropped-degenerate-names counter.
func (p *Pipeline) IncDegenerateNames() {
	p.degenerateNames.Inc()
}

// ObserveRunDuration records an end-to-end run duration sample.
func (p *Pipeline) ObserveRunDuration(seconds float64) {
	p.runDuration.Observe(seconds)
}

// Collectors returns all Prometheus collectors for testing.
func (p *Pipeline) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		p.recordsIngested,
		p.productsCreated,
		p.productsMerged,
		p.degenerateNames,
		p.runDuration,
	}
}
