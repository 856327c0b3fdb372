package metrics

import (
	"context"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "youcan-website"

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal       metric.Int64Counter
	HTTPRequestDuration     metric.Float64Histogram
	SessionTransitionsTotal metric.Int64Counter
	TrialRequestsTotal      metric.Int64Counter
	TemplateRenderDuration  metric.Float64Histogram
	DBQueryErrorsTotal      metric.Int64Counter
	ActiveVisitorGates      metric.Int64Gauge
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments from the global MeterProvider.
// Call it after the provider is installed; later calls are no-ops.
func InitAppMetrics() {
	once.Do(func() {
		appMetrics = build(otel.GetMeterProvider().Meter(meterName))
		log.Println("Application metrics instruments initialized.")
	})
}

// Get returns the instruments, creating them from whatever MeterProvider is
// installed if InitAppMetrics was never called (tests use the no-op one).
func Get() *AppMetrics {
	once.Do(func() {
		appMetrics = build(otel.GetMeterProvider().Meter(meterName))
	})
	return appMetrics
}

func build(meter metric.Meter) *AppMetrics {
	m := &AppMetrics{}
	var err error

	m.HTTPRequestsTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests completed"),
		metric.WithUnit("{request}"),
	)
	check("http_requests_total", err)

	m.HTTPRequestDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("Duration of HTTP requests in seconds"),
		metric.WithUnit("s"),
	)
	check("http_request_duration_seconds", err)

	m.SessionTransitionsTotal, err = meter.Int64Counter(
		"session_transitions_total",
		metric.WithDescription("Admin session logins and logouts"),
		metric.WithUnit("{transition}"),
	)
	check("session_transitions_total", err)

	m.TrialRequestsTotal, err = meter.Int64Counter(
		"trial_requests_total",
		metric.WithDescription("Trial training requests by outcome"),
		metric.WithUnit("{request}"),
	)
	check("trial_requests_total", err)

	m.TemplateRenderDuration, err = meter.Float64Histogram(
		"template_render_duration_seconds",
		metric.WithDescription("Duration of template rendering in seconds"),
		metric.WithUnit("s"),
	)
	check("template_render_duration_seconds", err)

	m.DBQueryErrorsTotal, err = meter.Int64Counter(
		"db_query_errors_total",
		metric.WithDescription("Total number of database query errors"),
		metric.WithUnit("{error}"),
	)
	check("db_query_errors_total", err)

	m.ActiveVisitorGates, err = meter.Int64Gauge(
		"active_visitor_gates",
		metric.WithDescription("Visitor session gates currently held in memory"),
		metric.WithUnit("{gate}"),
	)
	check("active_visitor_gates", err)

	return m
}

func check(name string, err error) {
	if err != nil {
		log.Fatalf("Metrics: Failed to create %s: %v", name, err)
	}
}

// RecordSessionTransition counts a login or logout.
func (m *AppMetrics) RecordSessionTransition(ctx context.Context, action string) {
	m.SessionTransitionsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("action", action)))
}

// RecordTrialRequest counts a contact form submission by outcome.
func (m *AppMetrics) RecordTrialRequest(ctx context.Context, outcome string) {
	m.TrialRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
