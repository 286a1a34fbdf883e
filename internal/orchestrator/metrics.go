package orchestrator

import (
	"context"
	"fmt"
	"scanrunner/pkg/metrics"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "scanrunner/internal/orchestrator"

type instruments struct {
	runs            metric.Int64Counter
	duration        metric.Float64Histogram
	vulnerabilities metric.Int64Counter
}

func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	meter := mp.Meter(meterName)

	runs, err := meter.Int64Counter("scanrunner.runs",
		metric.WithDescription("Finished scanner runs by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create runs counter: %w", err)
	}

	duration, err := meter.Float64Histogram("scanrunner.run.duration",
		metric.WithDescription("Wall time of scanner runs."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.RunBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create run duration histogram: %w", err)
	}

	vulnerabilities, err := meter.Int64Counter("scanrunner.vulnerabilities",
		metric.WithDescription("Vulnerabilities ingested from scanner reports."))
	if err != nil {
		return nil, fmt.Errorf("could not create vulnerabilities counter: %w", err)
	}

	return &instruments{
		runs:            runs,
		duration:        duration,
		vulnerabilities: vulnerabilities,
	}, nil
}

func (i *instruments) record(ctx context.Context, outcome State, elapsed time.Duration, vulnerabilities int) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome.String()))
	i.runs.Add(ctx, 1, attrs)
	i.duration.Record(ctx, elapsed.Seconds(), attrs)
	if vulnerabilities > 0 {
		i.vulnerabilities.Add(ctx, int64(vulnerabilities))
	}
}
