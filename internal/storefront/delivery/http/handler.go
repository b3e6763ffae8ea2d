package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/jewelkraft/internal/storefront/client"
	"github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/internal/storefront/usecase/command"
	"github.com/tair/jewelkraft/internal/storefront/usecase/query"
	"github.com/tair/jewelkraft/internal/storefront/validation"
	"github.com/tair/jewelkraft/pkg/logger"
)

// Commands holds every command handler the storefront exposes
type Commands struct {
	GenerateDesign   *command.GenerateDesignHandler
	SaveDesign       *command.SaveDesignHandler
	DeleteDesign     *command.DeleteDesignHandler
	ConfigureProduct *command.ConfigureProductHandler
	DeleteProduct    *command.DeleteProductHandler
	AddToCart        *command.AddToCartHandler
	RemoveFromCart   *command.RemoveFromCartHandler
	UpdateCart       *command.UpdateCartQuantityHandler
	ClearCart        *command.ClearCartHandler
	Checkout         *command.CheckoutHandler
}

// Queries holds every query handler the storefront exposes
type Queries struct {
	ListDesigns  *query.ListDesignsHandler
	GetDesign    *query.GetDesignHandler
	ListProducts *query.ListProductsHandler
	GetProduct   *query.GetProductHandler
	GetCart      *query.GetCartHandler
	CartCount    *query.CartCountHandler
	GetOptions   *query.GetOptionsHandler
}

// StorefrontHandler handles HTTP requests for designs, products and the cart
type StorefrontHandler struct {
	commands *Commands
	queries  *Queries
	store    domain.Store

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	storeSize      *prometheus.GaugeVec
}

// NewStorefrontHandler creates the handler and registers its metrics with reg
func NewStorefrontHandler(commands *Commands, queries *Queries, store domain.Store, reg prometheus.Registerer) *StorefrontHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_requests_total",
			Help: "Total number of requests to the storefront service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_request_duration_seconds",
			Help:    "Duration of storefront requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "storefront_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	storeSize := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "storefront_store_items",
			Help: "Number of items held by the local store per collection",
		},
		[]string{"collection"},
	)

	reg.MustRegister(requestCounter, requestLatency, requestSummary, storeSize)

	return &StorefrontHandler{
		commands:       commands,
		queries:        queries,
		store:          store,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
		storeSize:      storeSize,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Field   string      `json:"field,omitempty"`
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
func (h *StorefrontHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)

		if r.Method != http.MethodGet {
			h.updateStoreMetrics(r)
		}
	}
}

// route registers path with metrics labelled by the route template
func (h *StorefrontHandler) route(router *mux.Router, method, path string, fn http.HandlerFunc) {
	router.HandleFunc(path, h.metricsMiddleware(path, fn)).Methods(method)
}

func (h *StorefrontHandler) RegisterRoutes(router *mux.Router) {
	// Designs
	h.route(router, http.MethodPost, "/api/designs/generate", h.GenerateDesign)
	h.route(router, http.MethodGet, "/api/designs", h.ListDesigns)
	h.route(router, http.MethodGet, "/api/designs/{id}", h.GetDesign)
	h.route(router, http.MethodPut, "/api/designs/{id}/save", h.SaveDesign)
	h.route(router, http.MethodDelete, "/api/designs/{id}", h.DeleteDesign)

	// Products
	h.route(router, http.MethodPost, "/api/products", h.ConfigureProduct)
	h.route(router, http.MethodGet, "/api/products", h.ListProducts)
	h.route(router, http.MethodGet, "/api/products/{id}", h.GetProduct)
	h.route(router, http.MethodDelete, "/api/products/{id}", h.DeleteProduct)

	// Cart
	h.route(router, http.MethodGet, "/api/cart", h.GetCart)
	h.route(router, http.MethodGet, "/api/cart/count", h.CartCount)
	h.route(router, http.MethodPost, "/api/cart/items", h.AddToCart)
	h.route(router, http.MethodPatch, "/api/cart/items/{productId}", h.UpdateCartItem)
	h.route(router, http.MethodDelete, "/api/cart/items/{productId}", h.RemoveFromCart)
	h.route(router, http.MethodDelete, "/api/cart", h.ClearCart)
	h.route(router, http.MethodPost, "/api/checkout", h.Checkout)

	h.route(router, http.MethodGet, "/api/options", h.GetOptions)
}

func (h *StorefrontHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Storefront service is healthy",
			Data:    h.store.Stats(r.Context()),
		})
	}).Methods("GET")
}

// updateStoreMetrics refreshes the collection size gauges
func (h *StorefrontHandler) updateStoreMetrics(r *http.Request) {
	stats := h.store.Stats(r.Context())
	h.storeSize.WithLabelValues("designs").Set(float64(stats.Designs))
	h.storeSize.WithLabelValues("products").Set(float64(stats.Products))
	h.storeSize.WithLabelValues("cart_lines").Set(float64(stats.CartLines))
	h.storeSize.WithLabelValues("cart_units").Set(float64(stats.CartUnits))
}

// decodeBody reads a JSON request body, answering 400 on failure
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return false
	}
	return true
}

// respondError maps use case errors to HTTP statuses
func respondError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: verr.Message, Field: verr.Field})
		return
	case errors.Is(err, domain.ErrDesignNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCartItemNotFound):
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: err.Error()})
		return
	case errors.Is(err, domain.ErrEmptyCart):
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	case errors.Is(err, client.ErrCircuitOpen):
		logger.Warn(r.Context()).Err(err).Msg(action)
		respondJSON(w, http.StatusServiceUnavailable, Response{Success: false, Error: err.Error()})
		return
	case errors.Is(err, client.ErrOrderRejected), errors.Is(err, client.ErrGenerationFailed):
		logger.Warn(r.Context()).Err(err).Msg(action)
		respondJSON(w, http.StatusBadGateway, Response{Success: false, Error: err.Error()})
		return
	}

	logger.Error(r.Context()).Err(err).Msg(action)
	respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: action})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
