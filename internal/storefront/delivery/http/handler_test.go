package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/jewelkraft/internal/storefront/client"
	"github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/internal/storefront/repository"
	"github.com/tair/jewelkraft/internal/storefront/usecase/command"
	"github.com/tair/jewelkraft/internal/storefront/usecase/query"
)

type stubGenerator struct{ err error }

func (g stubGenerator) Generate(ctx context.Context, prompt string) (*client.GenerateResponse, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &client.GenerateResponse{Success: true, Prompt: prompt, Images: []string{"/images/one.png"}}, nil
}

type stubOrders struct{ err error }

func (o stubOrders) PlaceOrder(ctx context.Context, req client.PlaceOrderRequest) (string, error) {
	if o.err != nil {
		return "", o.err
	}
	return "ORD-0000abcd", nil
}

type testServer struct {
	router *mux.Router
	store  *repository.MemoryStore
}

func newTestServer(t *testing.T, gen command.ImageGenerator, orders command.OrderPlacer) *testServer {
	t.Helper()
	store, err := repository.NewMemoryStore(context.Background(), repository.NewLogBackend())
	require.NoError(t, err)

	options := domain.DefaultOptions()
	pricing := domain.Pricing{UnitPrice: 2499, Currency: "INR"}
	commands := &Commands{
		GenerateDesign:   command.NewGenerateDesignHandler(store, gen),
		SaveDesign:       command.NewSaveDesignHandler(store),
		DeleteDesign:     command.NewDeleteDesignHandler(store),
		ConfigureProduct: command.NewConfigureProductHandler(store, options),
		DeleteProduct:    command.NewDeleteProductHandler(store),
		AddToCart:        command.NewAddToCartHandler(store),
		RemoveFromCart:   command.NewRemoveFromCartHandler(store),
		UpdateCart:       command.NewUpdateCartQuantityHandler(store),
		ClearCart:        command.NewClearCartHandler(store),
		Checkout:         command.NewCheckoutHandler(store, orders, pricing),
	}
	queries := &Queries{
		ListDesigns:  query.NewListDesignsHandler(store),
		GetDesign:    query.NewGetDesignHandler(store),
		ListProducts: query.NewListProductsHandler(store),
		GetProduct:   query.NewGetProductHandler(store),
		GetCart:      query.NewGetCartHandler(store, pricing),
		CartCount:    query.NewCartCountHandler(store),
		GetOptions:   query.NewGetOptionsHandler(options),
	}

	handler := NewStorefrontHandler(commands, queries, store, prometheus.NewRegistry())
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router)
	return &testServer{router: router, store: store}
}

// envelope mirrors Response with raw data for per-test decoding
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Field   string          `json:"field"`
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func (s *testServer) createDesign(t *testing.T) domain.Design {
	t.Helper()
	code, env := s.do(t, http.MethodPost, "/api/designs/generate", map[string]string{"prompt": "Art deco sapphire ring"})
	require.Equal(t, http.StatusCreated, code)
	var design domain.Design
	require.NoError(t, json.Unmarshal(env.Data, &design))
	return design
}

func productBody(designID string, addToCart bool) map[string]interface{} {
	return map[string]interface{}{
		"designId":  designID,
		"material":  "Platinum",
		"size":      "S",
		"color":     "Matte",
		"hallmark":  "950",
		"purity":    "99.5%",
		"weight":    "1-5g",
		"quantity":  1,
		"addToCart": addToCart,
	}
}

func TestDesignLifecycle(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, stubOrders{})
	design := s.createDesign(t)
	assert.Equal(t, domain.DesignDraft, design.Status)
	assert.Equal(t, []string{"/images/one.png"}, design.Images)

	code, env := s.do(t, http.MethodPut, "/api/designs/"+design.ID+"/save", nil)
	require.Equal(t, http.StatusOK, code)
	var saved domain.Design
	require.NoError(t, json.Unmarshal(env.Data, &saved))
	assert.Equal(t, domain.DesignSaved, saved.Status)

	code, _ = s.do(t, http.MethodGet, "/api/designs/"+design.ID, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(t, http.MethodDelete, "/api/designs/"+design.ID, nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = s.do(t, http.MethodGet, "/api/designs/"+design.ID, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
}

func TestGenerateDesign_Errors(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, stubOrders{})

	code, env := s.do(t, http.MethodPost, "/api/designs/generate", map[string]string{"prompt": "   "})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "prompt", env.Field)
	assert.Equal(t, "Please enter a description for your jewelry design", env.Error)

	req := httptest.NewRequest(http.MethodPost, "/api/designs/generate", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	failing := newTestServer(t, stubGenerator{err: client.ErrGenerationFailed}, stubOrders{})
	code, _ = failing.do(t, http.MethodPost, "/api/designs/generate", map[string]string{"prompt": "Art deco sapphire ring"})
	assert.Equal(t, http.StatusBadGateway, code)

	unavailable := newTestServer(t, stubGenerator{err: client.ErrCircuitOpen}, stubOrders{})
	code, _ = unavailable.do(t, http.MethodPost, "/api/designs/generate", map[string]string{"prompt": "Art deco sapphire ring"})
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestProductAndCartFlow(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, stubOrders{})
	design := s.createDesign(t)

	code, env := s.do(t, http.MethodPost, "/api/products", productBody(design.ID, true))
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Product added to cart", env.Message)
	var product domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, domain.ProductInCart, product.Status)

	code, _ = s.do(t, http.MethodPost, "/api/cart/items", map[string]interface{}{"productId": product.ID, "quantity": 2})
	require.Equal(t, http.StatusOK, code)

	code, env = s.do(t, http.MethodGet, "/api/cart/count", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"lines":1,"units":3}`, string(env.Data))

	code, _ = s.do(t, http.MethodPatch, "/api/cart/items/"+product.ID, map[string]int{"quantity": 4})
	require.Equal(t, http.StatusOK, code)

	code, env = s.do(t, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, code)
	var view domain.CartView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "Art deco sapphire ring", view.Lines[0].Title)
	assert.Equal(t, 4*2499.0, view.Total)

	code, _ = s.do(t, http.MethodPatch, "/api/cart/items/unknown", map[string]int{"quantity": 4})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(t, http.MethodDelete, "/api/cart/items/"+product.ID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, s.store.Cart(context.Background()))
}

func TestConfigureProduct_ValidationAndMissingDesign(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, stubOrders{})
	design := s.createDesign(t)

	body := productBody(design.ID, false)
	body["size"] = ""
	code, env := s.do(t, http.MethodPost, "/api/products", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "size", env.Field)
	assert.Equal(t, "Please select a size", env.Error)

	code, _ = s.do(t, http.MethodPost, "/api/products", productBody("missing", false))
	assert.Equal(t, http.StatusNotFound, code)
}

func checkoutBody() map[string]interface{} {
	return map[string]interface{}{
		"shipping": map[string]string{
			"name":    "Meera Iyer",
			"address": "4 Residency Road, Chennai",
			"phone":   "+91 90000 11111",
			"email":   "meera@example.com",
		},
		"payment_id": "pay_abc",
	}
}

func TestCheckout(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, stubOrders{})

	code, env := s.do(t, http.MethodPost, "/api/checkout", checkoutBody())
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, domain.ErrEmptyCart.Error(), env.Error)

	design := s.createDesign(t)
	code, _ = s.do(t, http.MethodPost, "/api/products", productBody(design.ID, true))
	require.Equal(t, http.StatusCreated, code)

	code, env = s.do(t, http.MethodPost, "/api/checkout", checkoutBody())
	require.Equal(t, http.StatusCreated, code)
	var result struct {
		OrderID string `json:"order_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "ORD-0000abcd", result.OrderID)
	assert.Empty(t, s.store.Cart(context.Background()))
}

func TestCheckout_OrderServiceFailureKeepsCart(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, stubOrders{err: errors.New("connection refused")})
	design := s.createDesign(t)
	code, _ := s.do(t, http.MethodPost, "/api/products", productBody(design.ID, true))
	require.Equal(t, http.StatusCreated, code)

	code, env := s.do(t, http.MethodPost, "/api/checkout", checkoutBody())
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Checkout failed", env.Error)
	assert.Len(t, s.store.Cart(context.Background()), 1)
}

func TestOptionsAndHealth(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, stubOrders{})

	code, env := s.do(t, http.MethodGet, "/api/options", nil)
	require.Equal(t, http.StatusOK, code)
	var options domain.ProductOptions
	require.NoError(t, json.Unmarshal(env.Data, &options))
	assert.Equal(t, domain.DefaultOptions(), options)

	code, env = s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
}
