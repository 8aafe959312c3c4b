package extract

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/eLbARROS13/OH-Toolkit/internal/profile"
)

// TracedExtractor wraps an Extractor with OpenTelemetry tracing. Each
// Extract call becomes one span named "ohtk.extract" carrying the request
// shape and the record count.
//
// Thread-safety: safe for concurrent use (delegates to the inner extractor).
type TracedExtractor struct {
	inner  *Extractor
	tracer trace.Tracer
}

// NewTracedExtractor creates a traced wrapper around inner. Pass a tracer
// from otel.Tracer; the global default is a no-op, so wrapping is free when
// tracing is not configured.
func NewTracedExtractor(inner *Extractor, tracer trace.Tracer) *TracedExtractor {
	return &TracedExtractor{
		inner:  inner,
		tracer: tracer,
	}
}

// Extract runs the inner extraction inside a span.
func (t *TracedExtractor) Extract(ctx context.Context, set *profile.Set, req Request) ([]*Record, error) {
	ctx, span := t.tracer.Start(ctx, "ohtk.extract",
		trace.WithAttributes(
			attribute.String("extract.base_path", req.BasePath),
			attribute.Int("extract.levels", len(req.Levels)),
			attribute.Int("extract.value_paths", len(req.ValuePaths)),
		),
	)
	defer span.End()

	records, err := t.inner.Extract(ctx, set, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("extract.records", len(records)))
	return records, nil
}
