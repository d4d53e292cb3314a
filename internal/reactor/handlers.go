package reactor

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"reactor-staging/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the reactor domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("reactor")

// decodeParameters reads and sanity-checks the JSON parameter body.
// On failure it writes the error response and reports false.
func decodeParameters(w http.ResponseWriter, r *http.Request, span trace.Span, logger *zap.Logger, opName string) (ReactionParameters, bool) {
	ctx := r.Context()

	var p ReactionParameters
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return ReactionParameters{}, false
	}

	for _, v := range []float64{p.EnthalpyA, p.EnthalpyB, p.HeatCapacityA, p.HeatCapacityB, p.FeedRate, p.ReferenceK, p.FeedTemp, p.OperatingTemp, p.CoolingTemp, p.TargetConversion} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid numeric input", fmt.Errorf("non-finite parameter value %g", v), http.StatusBadRequest, w)
			return ReactionParameters{}, false
		}
	}

	return p, true
}

// RunCalculation handles POST /reactor/run, the full multi-stage
// staging calculation. Each solved stage is recorded as a span event,
// so a single run produces a trace of the whole reactor train.
func RunCalculation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "reactor.run",
		trace.WithAttributes(
			attribute.String("reactor.operation", "run"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	p, ok := decodeParameters(w, r.WithContext(ctx), span, logger, "run")
	if !ok {
		return
	}

	span.SetAttributes(
		attribute.Float64("reactor.feed_temp", p.FeedTemp),
		attribute.Float64("reactor.cooling_temp", p.CoolingTemp),
		attribute.Float64("reactor.target_conversion", p.TargetConversion),
	)

	start := time.Now()
	result, err := Run(p)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "run", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", "run"))
	runsCounter.Add(ctx, 1, attrs)
	runHistogram.Record(ctx, elapsed, attrs)
	conversionGauge.Record(ctx, result.FinalConversion, attrs)

	for i, s := range result.Stages {
		iterationsHist.Record(ctx, int64(s.Iterations), attrs)
		span.AddEvent(fmt.Sprintf("stage.%d.solved", i+1), trace.WithAttributes(
			attribute.Float64("temperature", s.Temperature),
			attribute.Float64("conversion", s.Conversion),
			attribute.Int("iterations", s.Iterations),
		))
	}

	span.SetAttributes(
		attribute.Int("reactor.stages", len(result.Stages)),
		attribute.Float64("reactor.final_conversion", result.FinalConversion),
		attribute.Bool("reactor.target_reached", result.TargetReached),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("staging calculation completed",
		zap.Int("stages", len(result.Stages)),
		zap.Float64("final_conversion", result.FinalConversion),
		zap.Bool("target_reached", result.TargetReached),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// Coefficients handles POST /reactor/coefficients. It derives the
// intermediate coefficients without running the stage solver.
func Coefficients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "reactor.coefficients",
		trace.WithAttributes(
			attribute.String("reactor.operation", "coefficients"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	p, ok := decodeParameters(w, r.WithContext(ctx), span, logger, "coefficients")
	if !ok {
		return
	}

	if err := p.Validate(); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "coefficients", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	c := DeriveCoefficients(p)

	span.SetAttributes(
		attribute.Float64("reactor.delta_h", c.DeltaH),
		attribute.Float64("reactor.heat_capacity", c.HeatCapacity),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("coefficients derived",
		zap.Float64("delta_h", c.DeltaH),
		zap.Float64("heat_capacity", c.HeatCapacity),
		zap.String("request_id", requestID),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(c)
}

// Chart handles POST /reactor/chart. It runs the calculation and
// responds with a PNG of the equilibrium curve and stage lines.
func Chart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "reactor.chart",
		trace.WithAttributes(
			attribute.String("reactor.operation", "chart"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	p, ok := decodeParameters(w, r.WithContext(ctx), span, logger, "chart")
	if !ok {
		return
	}

	result, err := Run(p)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "chart", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	png, err := RenderChart(p, result)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "chart", "rendering chart failed", err, http.StatusInternalServerError, w)
		return
	}

	runsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "chart")))
	span.SetAttributes(attribute.Int("chart.bytes", len(png)))
	span.SetStatus(codes.Ok, "")

	logger.Info("chart rendered",
		zap.Int("stages", len(result.Stages)),
		zap.Int("bytes", len(png)),
		zap.String("request_id", requestID),
	)

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// ListPresets handles GET /reactor/presets.
func ListPresets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "reactor.presets")
	defer span.End()

	presets, err := Presets()
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "presets", "loading presets failed", err, http.StatusInternalServerError, w)
		return
	}

	span.SetAttributes(attribute.Int("presets.count", len(presets)))
	span.SetStatus(codes.Ok, "")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(presets)
}
