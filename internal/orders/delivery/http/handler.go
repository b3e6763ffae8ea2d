package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/jewelkraft/internal/orders/domain"
	"github.com/tair/jewelkraft/internal/orders/usecase/command"
	"github.com/tair/jewelkraft/internal/orders/usecase/query"
	"github.com/tair/jewelkraft/pkg/logger"
)

// OrderHandler handles HTTP requests for orders using CQRS pattern
type OrderHandler struct {
	placeHandler *command.PlaceOrderHandler
	getHandler   *query.GetOrderHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	orderAmount    prometheus.Histogram
}

// NewOrderHandler creates the handler and registers its metrics with reg
func NewOrderHandler(placeHandler *command.PlaceOrderHandler, getHandler *query.GetOrderHandler, reg prometheus.Registerer) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_service_requests_total",
			Help: "Total number of requests to orders service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orders_service_request_duration_seconds",
			Help:    "Duration of orders service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	orderAmount := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "orders_service_order_amount",
			Help:    "Amount of placed orders",
			Buckets: prometheus.ExponentialBuckets(1000, 2, 10),
		},
	)

	reg.MustRegister(requestCounter, requestLatency, orderAmount)

	return &OrderHandler{
		placeHandler:   placeHandler,
		getHandler:     getHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		orderAmount:    orderAmount,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	OrderID string      `json:"order_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", h.PlaceOrder)).Methods("POST")
	router.HandleFunc("/api/orders/{order_id}", h.metricsMiddleware("/api/orders/{order_id}", h.GetOrder)).Methods("GET")
}

// RegisterMiddlewares adds request tracing and logging
func RegisterMiddlewares(router *mux.Router) {
	router.Use(func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, "orders-request")
	})
	router.Use(loggingMiddleware)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		logEvent := logger.WithContext(r.Context()).Info()
		if rw.statusCode >= 400 {
			logEvent = logger.WithContext(r.Context()).Error()
		}
		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.statusCode).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("HTTP request completed")
	})
}

// PlaceOrder handles POST /api/orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items     []domain.OrderItem `json:"items"`
		Shipping  domain.Shipping    `json:"shipping"`
		PaymentID string             `json:"payment_id"`
		Amount    float64            `json:"amount"`
		Currency  string             `json:"currency"`
		Email     string             `json:"email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	order, err := h.placeHandler.Handle(r.Context(), command.PlaceOrderCommand{
		Items:     req.Items,
		Shipping:  req.Shipping,
		PaymentID: req.PaymentID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Email:     req.Email,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrder) {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   strings.TrimPrefix(err.Error(), domain.ErrInvalidOrder.Error()+": "),
			})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to place order")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to place order",
		})
		return
	}

	h.orderAmount.Observe(order.Amount)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order placed successfully",
		OrderID: order.OrderID,
	})
}

// GetOrder handles GET /api/orders/{order_id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.getHandler.Handle(r.Context(), query.GetOrderQuery{OrderID: mux.Vars(r)["order_id"]})
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Order not found",
			})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to get order")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get order",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		OrderID: order.OrderID,
		Data:    order,
	})
}

// RegisterHealthCheck registers /health backed by a database ping
func (h *OrderHandler) RegisterHealthCheck(router *mux.Router, ping func() error) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Orders service is healthy",
		})
	}).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
