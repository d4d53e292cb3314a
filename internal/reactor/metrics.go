package reactor

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	runsCounter     metric.Int64Counter
	runHistogram    metric.Float64Histogram
	errorCounter    metric.Int64Counter
	conversionGauge metric.Float64Gauge
	iterationsHist  metric.Int64Histogram
)

// InitMetrics registers custom OTel metric instruments for the reactor
// domain. Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("reactor")

	var err error

	runsCounter, err = meter.Int64Counter("reactor.runs.total",
		metric.WithDescription("Total number of staging calculations performed"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return fmt.Errorf("creating runs counter: %w", err)
	}

	runHistogram, err = meter.Float64Histogram("reactor.run.duration",
		metric.WithDescription("Duration of staging calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating run histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("reactor.errors.total",
		metric.WithDescription("Total number of rejected or failed calculations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	conversionGauge, err = meter.Float64Gauge("reactor.final_conversion",
		metric.WithDescription("Final cumulative conversion of the last calculation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating conversion gauge: %w", err)
	}

	iterationsHist, err = meter.Int64Histogram("reactor.solver.iterations",
		metric.WithDescription("Newton iterations consumed per reactor stage"),
		metric.WithUnit("{iteration}"),
		metric.WithExplicitBucketBoundaries(1, 2, 5, 10, 20, 50),
	)
	if err != nil {
		return fmt.Errorf("creating iterations histogram: %w", err)
	}

	return nil
}
