package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shopbot/configs"
	"shopbot/internal/domain"

	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "http://localhost:5000"

// ShopClientAdapter struct - Output adapter for the e-commerce HTTP API
type ShopClientAdapter struct {
	httpClient *http.Client
	baseURL    string
}

// NewShopClientAdapter func - Creates new e-commerce client adapter
func NewShopClientAdapter(config configs.ShopAPI) *ShopClientAdapter {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	timeout := config.RequestTimeout()
	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        50,
			MaxIdleConnsPerHost: 50,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	logrus.Infof("E-commerce client adapter initialized with base URL: %s, timeout: %v", baseURL, timeout)

	return &ShopClientAdapter{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// SearchProducts calls GET /products
func (a *ShopClientAdapter) SearchProducts(ctx context.Context, query domain.ProductQuery) (*domain.ProductList, error) {
	params := url.Values{}
	setParam(params, "id", query.ID)
	setParam(params, "q", query.Query)
	setParam(params, "category", query.Category)
	setParam(params, "brand", query.Brand)
	if query.MinPrice != nil {
		params.Set("min_price", formatPrice(*query.MinPrice))
	}
	if query.MaxPrice != nil {
		params.Set("max_price", formatPrice(*query.MaxPrice))
	}

	path := "/products"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var list domain.ProductList
	if err := a.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	if list.Products == nil {
		list.Products = []domain.Product{}
	}
	return &list, nil
}

// GetProduct calls GET /products/{id}
func (a *ShopClientAdapter) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var product domain.Product
	if err := a.do(ctx, http.MethodGet, "/products/"+url.PathEscape(productID), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetCart calls GET /cart/{user_id}
func (a *ShopClientAdapter) GetCart(ctx context.Context, userID string) (*domain.CartView, error) {
	var cart domain.CartView
	if err := a.do(ctx, http.MethodGet, "/cart/"+url.PathEscape(userID), nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart calls POST /cart/add
func (a *ShopClientAdapter) AddToCart(ctx context.Context, request domain.CartMutationRequest) (*domain.MessageResponse, error) {
	var resp domain.MessageResponse
	if err := a.do(ctx, http.MethodPost, "/cart/add", request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RemoveFromCart calls POST /cart/remove
func (a *ShopClientAdapter) RemoveFromCart(ctx context.Context, request domain.CartMutationRequest) (*domain.MessageResponse, error) {
	var resp domain.MessageResponse
	if err := a.do(ctx, http.MethodPost, "/cart/remove", request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Checkout calls POST /checkout
func (a *ShopClientAdapter) Checkout(ctx context.Context, userID string) (*domain.CheckoutResponse, error) {
	var resp domain.CheckoutResponse
	if err := a.do(ctx, http.MethodPost, "/checkout", domain.CheckoutRequest{UserID: userID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LogChat calls POST /chat_logs
func (a *ShopClientAdapter) LogChat(ctx context.Context, request domain.ChatLogRequest) error {
	return a.do(ctx, http.MethodPost, "/chat_logs", request, nil)
}

// do sends one request and decodes a 2xx body into out. Every failure comes back
// as a *domain.ShopError.
func (a *ShopClientAdapter) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		bodyBytes, err := json.Marshal(payload)
		if err != nil {
			return unavailable(fmt.Errorf("failed to marshal request: %w", err))
		}
		body = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return unavailable(err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		logrus.Warnf("E-commerce request %s %s failed: %v", method, path, err)
		return unavailable(err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return unavailable(fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorBody
		if jsonErr := json.Unmarshal(respBytes, &apiErr); jsonErr != nil || apiErr.Error == "" {
			return unavailable(fmt.Errorf("%s %s returned status %d", method, path, resp.StatusCode))
		}
		return domain.NewShopError(kindForStatus(resp.StatusCode), "%s", apiErr.Error)
	}

	if out == nil || len(respBytes) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return unavailable(fmt.Errorf("failed to parse response: %w", err))
	}
	return nil
}

func unavailable(cause error) *domain.ShopError {
	return domain.NewShopError(domain.ErrShopUnavailable, "Could not connect to the e-commerce service: %v", cause)
}

func kindForStatus(status int) error {
	switch {
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case status >= 500:
		return domain.ErrShopUnavailable
	default:
		return domain.ErrInvalidRequest
	}
}

func setParam(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
