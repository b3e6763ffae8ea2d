package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/jewelkraft/internal/orders/domain"
)

type memoryOrders struct {
	orders    map[string]*domain.Order
	createErr error
}

func (m *memoryOrders) Create(_ context.Context, order *domain.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	order.ID = uint(len(m.orders) + 1)
	m.orders[order.OrderID] = order
	return nil
}

func (m *memoryOrders) FindByOrderID(_ context.Context, orderID string) (*domain.Order, error) {
	order, ok := m.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

type ctxCapturingOrders struct {
	onCreate func(ctx context.Context)
}

func (c *ctxCapturingOrders) Create(ctx context.Context, _ *domain.Order) error {
	c.onCreate(ctx)
	return nil
}

func (c *ctxCapturingOrders) FindByOrderID(context.Context, string) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}

func spanIDFrom(ctx context.Context) trace.SpanID {
	return trace.SpanContextFromContext(ctx).SpanID()
}

func newTracedOrders(t *testing.T, inner *memoryOrders) (*TracingOrderRepository, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewTracingOrderRepositoryWithProvider(inner, tp), recorder
}

func spanAttr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracingOrderRepository_Create(t *testing.T) {
	repo, recorder := newTracedOrders(t, &memoryOrders{orders: map[string]*domain.Order{}})

	order := &domain.Order{
		OrderID: "ORD-1",
		Amount:  2500,
		Items:   []domain.OrderItem{{ProductID: "p1", Quantity: 2, Price: 1250}},
	}
	require.NoError(t, repo.Create(context.Background(), order))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "repository.Create", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	orderID, ok := spanAttr(spans[0], "order.order_id")
	require.True(t, ok)
	assert.Equal(t, "ORD-1", orderID.AsString())
	items, ok := spanAttr(spans[0], "order.items")
	require.True(t, ok)
	assert.Equal(t, int64(1), items.AsInt64())
	id, ok := spanAttr(spans[0], "order.id")
	require.True(t, ok)
	assert.Equal(t, int64(1), id.AsInt64())
}

func TestTracingOrderRepository_CreateError(t *testing.T) {
	failure := assert.AnError
	repo, recorder := newTracedOrders(t, &memoryOrders{orders: map[string]*domain.Order{}, createErr: failure})

	err := repo.Create(context.Background(), &domain.Order{OrderID: "ORD-2"})
	assert.ErrorIs(t, err, failure)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, failure.Error(), spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestTracingOrderRepository_FindByOrderID(t *testing.T) {
	inner := &memoryOrders{orders: map[string]*domain.Order{
		"ORD-3": {ID: 3, OrderID: "ORD-3", Status: domain.StatusPlaced, Amount: 900},
	}}
	repo, recorder := newTracedOrders(t, inner)

	order, err := repo.FindByOrderID(context.Background(), "ORD-3")
	require.NoError(t, err)
	assert.Equal(t, uint(3), order.ID)

	_, err = repo.FindByOrderID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	for _, span := range spans {
		assert.Equal(t, "repository.FindByOrderID", span.Name())
	}
	status, ok := spanAttr(spans[0], "order.status")
	require.True(t, ok)
	assert.Equal(t, domain.StatusPlaced, status.AsString())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestTracingOrderRepository_PropagatesSpanContext(t *testing.T) {
	var seen context.Context
	inner := &ctxCapturingOrders{onCreate: func(ctx context.Context) { seen = ctx }}
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	repo := NewTracingOrderRepositoryWithProvider(inner, tp)
	require.NoError(t, repo.Create(context.Background(), &domain.Order{OrderID: "ORD-4"}))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.NotNil(t, seen)
	assert.Equal(t, spans[0].SpanContext().SpanID(), spanIDFrom(seen))
}
