package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/jewelkraft/internal/storefront/domain"
)

var tracer = otel.Tracer("storefront-repository")

// TracingBackend wraps a snapshot backend with spans
type TracingBackend struct {
	domain.SnapshotBackend
}

// NewTracingBackend wraps backend
func NewTracingBackend(backend domain.SnapshotBackend) *TracingBackend {
	return &TracingBackend{SnapshotBackend: backend}
}

// Load with tracing
func (b *TracingBackend) Load(ctx context.Context) (*domain.Snapshot, error) {
	ctx, span := tracer.Start(ctx, "snapshot.Load",
		trace.WithAttributes(attribute.String("snapshot.backend", b.Name())),
	)
	defer span.End()

	snapshot, err := b.SnapshotBackend.Load(ctx)
	if err != nil {
		addErrorToSpan(span, err)
		return nil, err
	}

	span.SetAttributes(snapshotAttributes(snapshot)...)
	return snapshot, nil
}

// Save with tracing
func (b *TracingBackend) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	ctx, span := tracer.Start(ctx, "snapshot.Save",
		trace.WithAttributes(attribute.String("snapshot.backend", b.Name())),
	)
	defer span.End()

	span.SetAttributes(snapshotAttributes(snapshot)...)
	if err := b.SnapshotBackend.Save(ctx, snapshot); err != nil {
		addErrorToSpan(span, err)
		return err
	}
	return nil
}

func snapshotAttributes(snapshot *domain.Snapshot) []attribute.KeyValue {
	if snapshot == nil {
		return nil
	}
	return []attribute.KeyValue{
		attribute.Int("snapshot.designs", len(snapshot.Designs)),
		attribute.Int("snapshot.products", len(snapshot.Products)),
		attribute.Int("snapshot.cart", len(snapshot.Cart)),
	}
}

func addErrorToSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
