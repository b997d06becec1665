package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	PagesRenderedTotal        metric.Int64Counter
	PagesNotFoundTotal        metric.Int64Counter
	PageCacheHitsTotal        metric.Int64Counter
	PageRenderDurationSeconds metric.Float64Histogram
	LeadSubmissionsTotal      metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider, so call it
// after the tracer package has installed one.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("UKDentalImplants")
		var err error
		m := &AppMetrics{}

		m.PagesRenderedTotal, err = meter.Int64Counter(
			"pages_rendered_total",
			metric.WithDescription("Total number of pages rendered, by route kind"),
			metric.WithUnit("{page}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create pages_rendered_total: %v", err)
		}

		m.PagesNotFoundTotal, err = meter.Int64Counter(
			"pages_not_found_total",
			metric.WithDescription("Total number of requests that resolved to NotFound"),
			metric.WithUnit("{page}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create pages_not_found_total: %v", err)
		}

		m.PageCacheHitsTotal, err = meter.Int64Counter(
			"page_cache_hits_total",
			metric.WithDescription("Total number of pages served from the render cache"),
			metric.WithUnit("{page}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create page_cache_hits_total: %v", err)
		}

		m.PageRenderDurationSeconds, err = meter.Float64Histogram(
			"page_render_duration_seconds",
			metric.WithDescription("Time spent rendering a page in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create page_render_duration_seconds: %v", err)
		}

		m.LeadSubmissionsTotal, err = meter.Int64Counter(
			"lead_submissions_total",
			metric.WithDescription("Total number of lead submissions, by outcome"),
			metric.WithUnit("{lead}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create lead_submissions_total: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
