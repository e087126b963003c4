package shopapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shopbot/configs"
	"shopbot/internal/domain"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *ShopClientAdapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewShopClientAdapter(configs.ShopAPI{BaseURL: server.URL + "/", Timeout: 2})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// TestNewShopClientAdapterDefaults tests base url and timeout defaults
func TestNewShopClientAdapterDefaults(t *testing.T) {
	adapter := NewShopClientAdapter(configs.ShopAPI{})

	if adapter.baseURL != "http://localhost:5000" {
		t.Errorf("expected default base url, got: %s", adapter.baseURL)
	}
	if adapter.httpClient.Timeout != 10*time.Second {
		t.Errorf("expected default timeout 10s, got: %v", adapter.httpClient.Timeout)
	}

	adapter = NewShopClientAdapter(configs.ShopAPI{BaseURL: "http://shop:8080/", Timeout: 3})
	if adapter.baseURL != "http://shop:8080" {
		t.Errorf("expected trailing slash to be trimmed, got: %s", adapter.baseURL)
	}
	if adapter.httpClient.Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got: %v", adapter.httpClient.Timeout)
	}
}

// TestSearchProductsSendsFilters tests query parameter encoding
func TestSearchProductsSendsFilters(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/products" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "red shoes" || q.Get("category") != "fashion" || q.Get("max_price") != "49.5" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		if q.Has("brand") || q.Has("min_price") || q.Has("id") {
			t.Errorf("expected empty filters to be omitted, got: %s", r.URL.RawQuery)
		}
		writeJSON(w, http.StatusOK, domain.ProductList{Products: []domain.Product{{ID: "p-1", Name: "Red Shoes", Price: 40}}})
	})

	maxPrice := 49.5
	list, err := adapter.SearchProducts(context.Background(), domain.ProductQuery{
		Query:    "red shoes",
		Category: "fashion",
		MaxPrice: &maxPrice,
	})

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(list.Products) != 1 || list.Products[0].ID != "p-1" {
		t.Errorf("unexpected products: %+v", list.Products)
	}
}

// TestSearchProductsNullList tests that a null product list decodes as empty
func TestSearchProductsNullList(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query string, got: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"products": null}`))
	})

	list, err := adapter.SearchProducts(context.Background(), domain.ProductQuery{})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if list.Products == nil || len(list.Products) != 0 {
		t.Errorf("expected empty non-nil list, got: %+v", list.Products)
	}
}

// TestGetProductNotFound tests that a JSON error body becomes a ShopError
func TestGetProductNotFound(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/missing" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
	})

	_, err := adapter.GetProduct(context.Background(), "missing")

	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
	if domain.ErrorMessage(err, "") != "Product not found" {
		t.Errorf("expected server message to pass through, got: %v", err)
	}
}

// TestGetCart tests cart decoding
func TestGetCart(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cart/test_user_123" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, domain.CartView{
			Items:      []domain.CartLine{{ProductID: "p-1", Name: "Mug", Price: 5, Quantity: 2}},
			TotalPrice: 10,
		})
	})

	cart, err := adapter.GetCart(context.Background(), "test_user_123")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cart.TotalPrice != 10 || len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Errorf("unexpected cart: %+v", cart)
	}
}

// TestCartMutationsPostJSON tests the add and remove request bodies
func TestCartMutationsPostJSON(t *testing.T) {
	var bodies []domain.CartMutationRequest
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got: %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected JSON content type, got: %s", r.Header.Get("Content-Type"))
		}
		var body domain.CartMutationRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		bodies = append(bodies, body)
		writeJSON(w, http.StatusOK, domain.MessageResponse{Message: "ok " + r.URL.Path})
	})

	resp, err := adapter.AddToCart(context.Background(), domain.CartMutationRequest{UserID: "u", ProductID: "p", Quantity: 1})
	if err != nil || resp.Message != "ok /cart/add" {
		t.Fatalf("unexpected add result: %+v, %v", resp, err)
	}
	resp, err = adapter.RemoveFromCart(context.Background(), domain.CartMutationRequest{UserID: "u", ProductID: "p", Quantity: domain.RemoveAllUnits})
	if err != nil || resp.Message != "ok /cart/remove" {
		t.Fatalf("unexpected remove result: %+v, %v", resp, err)
	}

	if len(bodies) != 2 || bodies[0].Quantity != 1 || bodies[1].Quantity != domain.RemoveAllUnits {
		t.Errorf("unexpected request bodies: %+v", bodies)
	}
}

// TestCheckoutEmptyCart tests that collaborator errors keep their text and kind
func TestCheckoutEmptyCart(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		var body domain.CheckoutRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.UserID != "u-1" {
			t.Errorf("expected user u-1, got: %s", body.UserID)
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Your cart is empty. Nothing to checkout."})
	})

	_, err := adapter.Checkout(context.Background(), "u-1")

	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got: %v", err)
	}
	if err.Error() != "Your cart is empty. Nothing to checkout." {
		t.Errorf("unexpected message: %v", err)
	}
}

// TestLogChatCreated tests a 201 response without decoding
func TestLogChatCreated(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat_logs" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(w, http.StatusCreated, domain.MessageResponse{Message: "Chat log recorded"})
	})

	err := adapter.LogChat(context.Background(), domain.ChatLogRequest{SessionID: "s", Sender: domain.SenderUser, Message: "hi"})
	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

// TestNonJSONErrorIsUnavailable tests that an HTML error page becomes a connection error
func TestNonJSONErrorIsUnavailable(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := adapter.GetCart(context.Background(), "u")

	if !errors.Is(err, domain.ErrShopUnavailable) {
		t.Errorf("expected ErrShopUnavailable, got: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Could not connect to the e-commerce service: ") {
		t.Errorf("unexpected message: %v", err)
	}
}

// TestTransportFailure tests an unreachable service
func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	adapter := NewShopClientAdapter(configs.ShopAPI{BaseURL: baseURL, Timeout: 1})
	_, err := adapter.SearchProducts(context.Background(), domain.ProductQuery{Query: "mug"})

	if !errors.Is(err, domain.ErrShopUnavailable) {
		t.Errorf("expected ErrShopUnavailable, got: %v", err)
	}
	if !strings.HasPrefix(domain.ErrorMessage(err, ""), "Could not connect to the e-commerce service: ") {
		t.Errorf("unexpected message: %v", err)
	}
}

// TestContextCancelled tests that a cancelled context aborts the call
func TestContextCancelled(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.ProductList{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.SearchProducts(ctx, domain.ProductQuery{})
	if !errors.Is(err, domain.ErrShopUnavailable) {
		t.Errorf("expected ErrShopUnavailable, got: %v", err)
	}
}
