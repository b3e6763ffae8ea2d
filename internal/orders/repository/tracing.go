package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/jewelkraft/internal/orders/domain"
)

const tracerName = "orders-repository"

// TracingOrderRepository wraps an order repository with tracing
type TracingOrderRepository struct {
	next   domain.OrderRepository
	tracer trace.Tracer
}

// NewTracingOrderRepository creates a tracing repository using the global tracer provider
func NewTracingOrderRepository(next domain.OrderRepository) *TracingOrderRepository {
	return NewTracingOrderRepositoryWithProvider(next, otel.GetTracerProvider())
}

// NewTracingOrderRepositoryWithProvider creates a tracing repository on an explicit provider
func NewTracingOrderRepositoryWithProvider(next domain.OrderRepository, tp trace.TracerProvider) *TracingOrderRepository {
	return &TracingOrderRepository{
		next:   next,
		tracer: tp.Tracer(tracerName),
	}
}

func (r *TracingOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	ctx, span := r.tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("order.order_id", order.OrderID),
			attribute.String("order.payment_id", order.PaymentID),
			attribute.Float64("order.amount", order.Amount),
			attribute.Int("order.items", len(order.Items)),
		),
	)
	defer span.End()

	err := r.next.Create(ctx, order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("order.id", int(order.ID)))
	return nil
}

func (r *TracingOrderRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	ctx, span := r.tracer.Start(ctx, "repository.FindByOrderID",
		trace.WithAttributes(attribute.String("order.order_id", orderID)),
	)
	defer span.End()

	order, err := r.next.FindByOrderID(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("order.status", order.Status),
		attribute.Float64("order.amount", order.Amount),
	)
	return order, nil
}
