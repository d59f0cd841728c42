package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Srinath-230/e-commerce-frontend-app/internal/domain"
	apperrors "github.com/Srinath-230/e-commerce-frontend-app/pkg/errors"
	"github.com/Srinath-230/e-commerce-frontend-app/pkg/logger"
)

// Operation names carried by RequestError so callers can report which call
// failed without inspecting transport details.
const (
	opListProducts   = "listProducts"
	opCreateProduct  = "createProduct"
	opUpdateProduct  = "updateProduct"
	opDeleteProduct  = "deleteProduct"
	opListCartItems  = "listCartItems"
	opUpsertCartItem = "upsertCartItem"
	opDeleteCartItem = "deleteCartItem"
	opSubmitContact  = "submitContactMessage"
)

// Doer is the interface for executing HTTP requests.
// Both httpclient.Client and httpclient.CircuitBreakerClient satisfy this.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Client is a typed client for the storefront backend. Every operation
// issues exactly one request and translates any failure into a RequestError
// carrying the operation name. The client holds no state beyond the network
// call; callers own all subsequent state.
type Client struct {
	baseURL    string
	httpClient Doer
	logger     *slog.Logger
}

// NewClient creates a typed backend client. baseURL must not end in a slash.
func NewClient(baseURL string, httpClient Doer, log *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     log,
	}
}

// ListProducts fetches the full product catalog.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, opListProducts, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct creates a new product from a validated draft.
func (c *Client) CreateProduct(ctx context.Context, draft domain.Draft) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, opCreateProduct, http.MethodPost, "/api/products", draft, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces an existing product with the draft's fields.
func (c *Client) UpdateProduct(ctx context.Context, id string, draft domain.Draft) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, opUpdateProduct, http.MethodPut, "/api/products/"+id, draft, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product by ID.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteProduct, http.MethodDelete, "/api/products/"+id, nil, nil)
}

// ListCartItems fetches all cart line items.
func (c *Client) ListCartItems(ctx context.Context) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := c.do(ctx, opListCartItems, http.MethodGet, "/api/cart", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpsertCartItem sets the absolute quantity for a product's cart line.
// This is idempotent "set quantity", not a server-side increment: the caller
// computes the new quantity from its local snapshot.
func (c *Client) UpsertCartItem(ctx context.Context, productID string, quantity int) (*domain.CartItem, error) {
	payload := struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}{ProductID: productID, Quantity: quantity}

	var item domain.CartItem
	if err := c.do(ctx, opUpsertCartItem, http.MethodPost, "/api/cart", payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteCartItem removes a cart line by its own ID (not the product ID).
func (c *Client) DeleteCartItem(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteCartItem, http.MethodDelete, "/api/cart/"+id, nil, nil)
}

// SubmitContactMessage submits a contact form message. The backend imposes
// no shape requirements beyond the three fields; the client sends them as-is.
func (c *Client) SubmitContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	return c.do(ctx, opSubmitContact, http.MethodPost, "/contact", msg, nil)
}

// do issues a single request and decodes the response into out (if non-nil).
// Transport failures, non-2xx statuses, and unparseable bodies all surface
// as a *errors.RequestError for op. There are no retries.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	start := time.Now()
	err := c.doOnce(ctx, op, method, path, in, out)
	observeRequest(op, err, time.Since(start).Seconds())

	log := logger.WithContext(ctx, c.logger)
	if err != nil {
		log.ErrorContext(ctx, "api request failed",
			slog.String("operation", op),
			slog.String("error", err.Error()),
		)
		return err
	}

	log.DebugContext(ctx, "api request completed",
		slog.String("operation", op),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func (c *Client) doOnce(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", op, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Stamp a correlation ID unless the caller already scoped one.
	correlationID := logger.CorrelationIDFromContext(ctx)
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	req.Header.Set("X-Correlation-ID", correlationID)

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return apperrors.Transport(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(op, resp)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
		return nil
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return apperrors.Decode(op, err)
	}
	return nil
}

// responseError reads a non-2xx response body and translates it into a
// RequestError preserving the status semantics.
func responseError(op string, resp *http.Response) error {
	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		bodyBytes = []byte("(failed to read body)")
	}
	detail := strings.TrimSpace(string(bodyBytes))

	switch resp.StatusCode {
	case http.StatusNotFound:
		return apperrors.Request(op, resp.StatusCode, fmt.Errorf("%w: %s", apperrors.ErrNotFound, detail))
	case http.StatusBadRequest:
		return apperrors.Request(op, resp.StatusCode, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, detail))
	default:
		return apperrors.Server(op, resp.StatusCode, detail)
	}
}
