package render

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/openvinotoolkit/genai-site/internal/render"

var renderCounter, renderDuration = newInstruments(otel.Meter(instrumentationName))

// startSpan starts a span from the TracerProvider of the span already in
// ctx, falling back to the global provider for root spans.
func startSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	provider := otel.GetTracerProvider()
	if parent := trace.SpanFromContext(ctx); parent.SpanContext().IsValid() {
		provider = parent.TracerProvider()
	}
	return provider.Tracer(instrumentationName).Start(ctx, name, opts...)
}

func newInstruments(meter metric.Meter) (metric.Int64Counter, metric.Float64Histogram) {
	counter, err := meter.Int64Counter("render.pages",
		metric.WithDescription("Pages rendered, by page type and outcome."),
		metric.WithUnit("{page}"),
	)
	if err != nil {
		otel.Handle(err)
		counter, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter("render.pages")
	}
	duration, err := meter.Float64Histogram("render.duration",
		metric.WithDescription("Time spent rendering a page, including its resources."),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
		duration, _ = noop.NewMeterProvider().Meter(instrumentationName).Float64Histogram("render.duration")
	}
	return counter, duration
}

func recordRender(ctx context.Context, page Page, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("render.page.type", fmt.Sprintf("%T", page)),
		attribute.String("render.outcome", outcome),
	)
	renderCounter.Add(ctx, 1, attrs)
	renderDuration.Record(ctx, elapsed.Seconds(), attrs)
}
